package xise

// FileKind is the xil_pn:type of a file entry.
type FileKind string

const (
	// KindRootProject never appears in a descriptor. It tags the descriptor a
	// resolution starts from.
	KindRootProject FileKind = "ROOT_XISE"
	// KindSubProject is a generated core's own project descriptor.
	KindSubProject FileKind = "FILE_COREGENISE"
	KindVerilog    FileKind = "FILE_VERILOG"
	KindVHDL       FileKind = "FILE_VHDL"
	KindUCF        FileKind = "FILE_UCF"
	// KindChipscope is a ChipScope core inserter definition (.cdc).
	KindChipscope FileKind = "FILE_CDC"
	// KindCoregen is a CORE Generator customization file (.xco).
	KindCoregen FileKind = "FILE_COREGEN"
	KindNGC     FileKind = "FILE_NGC"
	KindBMM     FileKind = "FILE_BMM"
)

// IsRTL reports whether files of this kind are HDL sources.
func (k FileKind) IsRTL() bool {
	return k == KindVerilog || k == KindVHDL
}

// IsProject reports whether files of this kind are themselves descriptors.
func (k FileKind) IsProject() bool {
	return k == KindRootProject || k == KindSubProject
}
