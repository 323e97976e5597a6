package options

import (
	"github.com/vk/isebuild/internal/formatter"
)

var ngdbuildTable = newTable(Translate,
	run("Macro Search Path", "-sd", formatter.EachPair(formatter.Identity())),
	run("Netlist Translation Type", "-nt", lowerOneOf("timestamp", "on", "off")),
	run("Allow Unmatched LOC Constraints", "-aul", formatter.FlagIfBool(true)),
	run("Allow Unmatched Timing Group Constraints", "-aut", formatter.FlagIfBool(true)),
	run("Allow Unexpanded Blocks", "-u", formatter.FlagIfBool(true)),
	run("Create I/O Pads from Ports", "-a", formatter.FlagIfBool(true)),
	run("Preserve Hierarchy on Sub Module", "-insert_keep_hierarchy", formatter.FlagIfBool(true)),
	run("Use LOC Constraints", "-r", formatter.FlagIfBool(false)),
	run("User Rules File for Netlister Launcher", "-ur", quotedPath()),
	bare("Other Ngdbuild Command Line Options"),
)

var mapTable = newTable(Map,
	run("Placer Effort Level", "-ol", formatter.SpecialCase()),
	run("Placer Extra Effort", "-xe", formatter.Normal(formatter.MaybeSpecialCase(), true)),
	run("Starting Placer Cost Table (1-100)", "-t", formatter.Identity()),
	run("Combinatorial Logic Optimization", "-logic_opt", formatter.BoolOnOff()),
	run("Register Duplication Map", "-register_duplication",
		formatter.Implies(formatter.Normal(formatter.SpecialCase(), true), formatter.Group{"-timing"})),
	run("Global Optimization", "-global_opt", lowerOneOf("off", "speed", "area", "power")),
	run("Trim Unconnected Signals", "-u", formatter.FlagIfBool(false)),
	run("Allow Logic Optimization Across Hierarchy", "-ignore_keep_hierarchy", formatter.FlagIfBool(true)),
	run("Optimization Strategy (Cover Mode)", "-cm", lowerOneOf("area", "speed", "balanced")),
	run("Pack I/O Registers/Latches into IOBs", "-pr", formatter.SpecialCase()),
	run("Use RLOC Constraints", "-ir", formatter.SpecialCase()),
	run("Map Slice Logic into Unused Block RAMs", "-bp", formatter.FlagIfBool(true)),
	run("LUT Combining", "-lc", lutCombining()),
	run("Power Reduction", "-power", formatter.BoolOnOff()),
	run("Enable Multi-Threading", "-mt", formatter.MaybeSpecialCase()),
	run("Generate Detailed MAP Report", "-detail", formatter.FlagIfBool(true)),
	run("Perform Timing-Driven Packing and Placement", "-timing", formatter.FlagIfBool(true)),
	run("Extra Cost Tables", "-xt", formatter.Identity()),
	run("Maximum Compression", "-c", formatter.Identity()),
	bare("Other Map Command Line Options"),
)

var parTable = newTable(PlaceAndRoute,
	run("Place & Route Effort Level (Overall)", "-ol", formatter.SpecialCase()),
	run("Extra Effort (Highest PAR level only)", "-xe", formatter.Normal(formatter.MaybeSpecialCase(), true)),
	run("Starting Placer Cost Table (1-100)", "-t", formatter.Identity()),
	run("Enable Multi-Threading", "-mt", formatter.MaybeSpecialCase()),
	run("Use Bonded I/Os", "-ub", formatter.FlagIfBool(true)),
	run("Power Reduction", "-power", formatter.BoolOnOff()),
	run("Ignore User Timing Constraints", "-x", formatter.FlagIfBool(true)),
	bare("Other Place & Route Command Line Options"),
)
