package options

import (
	"maps"

	"github.com/vk/isebuild/internal/formatter"
)

var (
	effortLevel = map[string]string{"Standard": "std", "High": "high"}
	extraEffort = map[string]string{"Normal": "n", "Continue on Impossible": "c"}
	threading   = map[string]string{"Off": "off"}
	yesNo       = map[string]string{"true": "Yes", "false": "No"}
	pull        = map[string]string{"Pull Up": "PullUp", "Pull Down": "PullDown", "Float": "PullNone"}
)

// specialCases holds the value substitutions keyed by process, then by flag
// (or by setting name for bitgen), then by the raw value's text. Booleans
// are looked up as "true" and "false".
var specialCases = formatter.SpecialCases{
	string(Synthesize): {
		"-opt_level":         {"Normal": "1", "High": "2"},
		"-netlist_hierarchy": {"As Optimized": "As_Optimized", "Rebuilt": "Rebuilt"},
		"-glob_opt": {
			"AllClockNets":     "AllClockNets",
			"Inpad To Outpad":  "Inpad_To_Outpad",
			"Offset In Before": "Offset_In_Before",
			"Offset Out After": "Offset_Out_After",
			"Maximum Delay":    "Max_Delay",
		},
		"-vlgcase": {"Full": "full", "Parallel": "parallel", "Full-Parallel": "full-parallel"},
	},
	string(Map): {
		"-ol": maps.Clone(effortLevel),
		"-xe": maps.Clone(extraEffort),
		// "None" omits the option, since map defaults to off.
		"-register_duplication": {"true": "on", "On": "on", "false": "None", "Off": "None"},
		"-pr": {
			"Off":                    "off",
			"For Inputs Only":        "i",
			"For Outputs Only":       "o",
			"For Inputs and Outputs": "b",
		},
		"-ir": {"Yes": "all", "No": "off", "For Packing": "place"},
		"-mt": maps.Clone(threading),
	},
	string(PlaceAndRoute): {
		"-ol": maps.Clone(effortLevel),
		"-xe": maps.Clone(extraEffort),
		"-mt": maps.Clone(threading),
	},
	string(GenerateProgrammingFile): bitgenSpecialCases(),
}

func bitgenSpecialCases() map[string]map[string]string {
	m := map[string]map[string]string{
		"CRC":           {"true": "Enable", "false": "Disable"},
		"UnusedPin":     maps.Clone(pull),
		"DCIUpdateMode": {"As Required": "AsRequired", "Continuous": "Continuous", "Quiet(Off)": "Quiet"},
		"StartUpClk":    {"CCLK": "Cclk", "JTAG Clock": "JtagClk", "User Clock": "UserClk"},
		"DONE_cycle":    {"Default (4)": "4"},
		"GTS_cycle":     {"Default (5)": "5"},
		"GWE_cycle":     {"Default (6)": "6"},
		"LCK_cycle":     {"Default (NoWait)": "NoWait"},
		"Match_cycle":   {"Default (Auto)": "Auto"},
		"Security": {
			"Enable Readback and Reconfiguration":  "None",
			"Disable Readback":                     "Level1",
			"Disable Readback and Reconfiguration": "Level2",
		},
	}
	for _, key := range []string{"DebugBitstream", "Binary", "DonePipe", "DriveDone", "Encrypt"} {
		m[key] = maps.Clone(yesNo)
	}
	for _, key := range []string{
		"CclkPin", "M0Pin", "M1Pin", "M2Pin", "ProgPin", "DonePin", "InitPin", "CsPin", "DinPin",
		"BusyPin", "RdWrPin", "PowerdownPin", "HswapenPin", "TckPin", "TdiPin", "TdoPin", "TmsPin",
	} {
		m[key] = maps.Clone(pull)
	}
	return m
}
