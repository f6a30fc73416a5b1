package app

import "urdf2kin/internal/types"

type ConvertRequest struct {
	URDFPath       string
	JointOrderPath string
	Name           string
	OutputPath     string
	Format         string
	PackagePaths   []string
}

type ConvertResult struct {
	Name       string
	ID         string
	Links      int
	Joints     int
	OutputPath string
	Body       types.KinBody
}

type InspectRequest struct {
	Path   string
	Format string
}

type InspectLinkSummary struct {
	Name       string
	Mass       float64
	Collision  int
	Visual     int
	Triangles  int
	RenderMesh string
}

type InspectJointSummary struct {
	Name   string
	Link0  string
	Link1  string
	Type   types.TargetJointType
	Active bool
	Limits *types.JointLimitInfo
}

type InspectResult struct {
	Name         string
	ID           string
	Links        []InspectLinkSummary
	Joints       []InspectJointSummary
	ActiveJoints int
	Adjacent     [][2]string
}

type PackagesRequest struct {
	PackagePaths []string
}

type PackagesResult struct {
	Packages []types.PackageLocation
}
