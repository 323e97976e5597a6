package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Toolchain []*toolchainBlock `hcl:"toolchain,block"`
	Processes []*processBlock   `hcl:"process,block"`
}

type toolchainBlock struct {
	Intstyle *string `hcl:"intstyle,optional"`
}

type processBlock struct {
	Name    string         `hcl:"name,label"`
	Options hcl.Expression `hcl:"options,optional"`
}
