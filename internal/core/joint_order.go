package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"urdf2kin/internal/types"
)

// OrderJoints arranges joints for conversion. Without an order map the
// document order is kept. With one, the output is pre-sized to the map,
// mapped joints land in their slot and unmapped joints follow in document
// order.
//
// Slots must lie in [0, len(order)) and be claimed by at most one joint.
// Slots named by the map but absent from the model are dropped.
func OrderJoints(ctx context.Context, joints []types.Joint, order types.JointOrder) ([]types.Joint, error) {
	if order == nil {
		return append([]types.Joint(nil), joints...), nil
	}

	slots := make([]*types.Joint, len(order))
	var tail []types.Joint
	for i := range joints {
		joint := joints[i]
		slot, ok := order[joint.Name]
		if !ok {
			tail = append(tail, joint)
			continue
		}
		if slot < 0 || slot >= len(slots) {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("joint %s has order index %d outside [0,%d)", joint.Name, slot, len(slots)))
		}
		if slots[slot] != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("joints %s and %s share order index %d", slots[slot].Name, joint.Name, slot))
		}
		slots[slot] = &joint
	}

	ordered := make([]types.Joint, 0, len(joints))
	for slot, joint := range slots {
		if joint == nil {
			log.Ctx(ctx).Warn().Int("index", slot).Msg("joint order index has no matching joint")
			continue
		}
		ordered = append(ordered, *joint)
	}
	return append(ordered, tail...), nil
}
