package options

import (
	"github.com/vk/isebuild/internal/formatter"
)

func oneOf(allowed ...string) *formatter.Formatter {
	return formatter.MustBeIn(allowed, formatter.Identity())
}

func lowerOneOf(allowed ...string) *formatter.Formatter {
	return formatter.MustBeIn(allowed, formatter.Lowercased(formatter.Identity()))
}

// quotedPath omits the option for a missing or "None" path.
func quotedPath() *formatter.Formatter {
	return formatter.Normal(formatter.Quoted(formatter.Identity(), `"`, `"`, true), true)
}

func quotedList() *formatter.Formatter {
	return formatter.AsList(formatter.Quoted(formatter.Identity(), `"`, `"`, false), false)
}

// lutCombining is shared by XST and map, which accept the same keywords.
func lutCombining() *formatter.Formatter {
	return formatter.MustBeIn([]string{"off", "auto", "area"},
		formatter.Lowercased(formatter.MaybeSpecialCase()))
}

// XST run arguments follow the "XST Commands" chapter of UG687 (ISE 13.4).
var xstTable = newTable(Synthesize,
	set("Temporary Directory", "-tmpdir", quotedPath()),
	set("Work Directory", "-xsthdpdir", quotedPath()),
	set("HDL INI File", "-xsthdpini", quotedPath()),

	run("Optimization Goal", "-opt_mode", oneOf("Speed", "Area")),
	run("Optimization Effort", "-opt_level", formatter.MustBeIn([]string{"1", "2"}, formatter.MaybeSpecialCase())),
	run("Power Reduction", "-power", formatter.BoolYesNo()),
	run("Use Synthesis Constraints File", "-iuc", formatter.BoolYesNo()),
	run("Synthesis Constraints File", "-uc", quotedPath()),
	run("Keep Hierarchy", "-keep_hierarchy", oneOf("No", "Yes", "Soft")),
	run("Netlist Hierarchy", "-netlist_hierarchy", formatter.SpecialCase()),
	run("Global Optimization Goal", "-glob_opt", formatter.SpecialCase()),
	run("Generate RTL Schematic", "-rtlview", formatter.BoolOrExtras([]string{"Only"}, nil)),
	run("Read Cores", "-read_cores", formatter.BoolOrExtrasMap(map[string]string{"Optimize": "optimize"}, nil)),
	run("Cores Search Directories", "-sd", quotedList()),
	run("Write Timing Constraints", "-write_timing_constraints", formatter.BoolYesNo()),
	run("Cross Clock Analysis", "-cross_clock_analysis", formatter.BoolYesNo()),
	run("Hierarchy Separator", "-hierarchy_separator", oneOf("/", "_")),
	run("Bus Delimiter", "-bus_delimiter", oneOf("<>", "[]", "{}", "()")),
	run("LUT-FF Pairs Utilization Ratio", "-slice_utilization_ratio", formatter.Identity()),
	run("BRAM Utilization Ratio", "-bram_utilization_ratio", formatter.Identity()),
	run("DSP Utilization Ratio", "-dsp_utilization_ratio", formatter.Identity()),
	run("Case", "-case", lowerOneOf("maintain", "lower", "upper")),
	run("Library Search Order", "-lso", formatter.Normal(formatter.Identity(), true)),
	bare("Library for Verilog Sources"),
	run("Verilog Include Directories", "-vlgincdir", quotedList()),
	run("Generics, Parameters", "-generics", formatter.AsList(formatter.Identity(), false)),
	run("Verilog Macros", "-define", formatter.AsList(formatter.Identity(), false)),
	run("FSM Extraction", "-fsm_extract", formatter.BoolYesNo()),
	run("FSM Encoding Algorithm", "-fsm_encoding",
		oneOf("Auto", "One-Hot", "Compact", "Sequential", "Gray", "Johnson", "User", "Speed1", "None")),
	run("Safe Implementation", "-safe_implementation", oneOf("No", "Yes")),
	run("Case Implementation Style", "-vlgcase", formatter.Normal(
		formatter.MustBeIn([]string{"full", "parallel", "full-parallel", "None"}, formatter.MaybeSpecialCase()), true)),
	run("FSM Style", "-fsm_style", oneOf("LUT", "Bram")),
	run("RAM Extraction", "-ram_extract", formatter.BoolYesNo()),
	run("RAM Style", "-ram_style", oneOf("Auto", "Block", "Distributed")),
	run("ROM Extraction", "-rom_extract", formatter.BoolYesNo()),
	run("ROM Style", "-rom_style", oneOf("Auto", "Block", "Distributed")),
	run("Automatic BRAM Packing", "-auto_bram_packing", formatter.BoolYesNo()),
	run("Shift Register Extraction", "-shreg_extract", formatter.BoolYesNo()),
	run("Shift Register Minimum Size", "-shreg_min_size", formatter.Identity()),
	run("Resource Sharing", "-resource_sharing", formatter.BoolYesNo()),
	run("Use DSP Block", "-use_dsp48", oneOf("Auto", "AutoMax", "Yes", "No")),
	run("Asynchronous To Synchronous", "-async_to_sync", formatter.BoolYesNo()),
	run("Add I/O Buffers", "-iobuf", formatter.BoolYesNo()),
	run("Max Fanout", "-max_fanout", formatter.Identity()),
	run("Number of Clock Buffers", "-bufg", formatter.Identity()),
	run("Register Duplication", "-register_duplication", formatter.BoolYesNo()),
	run("Equivalent Register Removal", "-equivalent_register_removal", formatter.BoolYesNo()),
	run("Register Balancing", "-register_balancing", oneOf("No", "Yes", "Forward", "Backward")),
	run("Move First Flip-Flop Stage", "-move_first_stage", formatter.BoolYesNo()),
	run("Move Last Flip-Flop Stage", "-move_last_stage", formatter.BoolYesNo()),
	run("Pack I/O Registers into IOBs", "-iob", oneOf("Auto", "Yes", "No")),
	run("LUT Combining", "-lc", lutCombining()),
	run("Reduce Control Sets", "-reduce_control_sets", oneOf("Auto", "No")),
	run("Use Clock Enable", "-use_clock_enable", oneOf("Auto", "Yes", "No")),
	run("Use Synchronous Set", "-use_sync_set", oneOf("Auto", "Yes", "No")),
	run("Use Synchronous Reset", "-use_sync_reset", oneOf("Auto", "Yes", "No")),
	run("Optimize Instantiated Primitives", "-optimize_primitives", formatter.BoolYesNo()),
	bare("Other XST Command Line Options"),
)
