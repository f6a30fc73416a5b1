package types

// JointOrder maps a joint name to its slot in the converted joint list.
type JointOrder map[string]int

// JointOrderDocument is the optional side-channel file read next to a
// URDF document.
type JointOrderDocument struct {
	Joints   JointOrder `yaml:"joints"`
	Adjacent [][]string `yaml:"adjacent,omitempty"`
}

// PackageLocation is a ROS package discovered on disk.
type PackageLocation struct {
	Name string
	Dir  string
}
