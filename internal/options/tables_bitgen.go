package options

import (
	"github.com/vk/isebuild/internal/formatter"
)

// setting emits "-g Key:value", looking the value up under Key.
func setting(key string) *formatter.Formatter {
	return formatter.Prefixed(key+":", formatter.SpecialCaseIn(key))
}

// maybeSetting is setting with unknown values passed through.
func maybeSetting(key string) *formatter.Formatter {
	return formatter.Prefixed(key+":", formatter.MaybeSpecialCaseIn(key))
}

func plainSetting(key string) *formatter.Formatter {
	return formatter.Prefixed(key+":", formatter.Identity())
}

// Every bitgen setting shares the -g flag, so special cases are keyed by
// setting name instead.
var bitgenTable = newTable(GenerateProgrammingFile,
	run("Enable Debugging of Serial Mode BitStream", "-g", setting("DebugBitstream")),
	run("Create Binary Configuration File", "-g", setting("Binary")),
	run("Enable Cyclic Redundancy Checking (CRC)", "-g", setting("CRC")),
	run("Configuration Rate", "-g", plainSetting("ConfigRate")),
	run("Configuration Clk (Configuration Pins)", "-g", setting("CclkPin")),
	run("Configuration Pin M0", "-g", setting("M0Pin")),
	run("Configuration Pin M1", "-g", setting("M1Pin")),
	run("Configuration Pin M2", "-g", setting("M2Pin")),
	run("Configuration Pin Program", "-g", setting("ProgPin")),
	run("Configuration Pin Done", "-g", setting("DonePin")),
	run("Configuration Pin Init", "-g", setting("InitPin")),
	run("Configuration Pin CS", "-g", setting("CsPin")),
	run("Configuration Pin DIn", "-g", setting("DinPin")),
	run("Configuration Pin Busy", "-g", setting("BusyPin")),
	run("Configuration Pin RdWr", "-g", setting("RdWrPin")),
	run("Configuration Pin Powerdown", "-g", setting("PowerdownPin")),
	run("Configuration Pin HSWAPEN", "-g", setting("HswapenPin")),
	run("JTAG Pin TCK", "-g", setting("TckPin")),
	run("JTAG Pin TDI", "-g", setting("TdiPin")),
	run("JTAG Pin TDO", "-g", setting("TdoPin")),
	run("JTAG Pin TMS", "-g", setting("TmsPin")),
	run("Unused IOB Pins", "-g", setting("UnusedPin")),
	run("UserID Code (8 Digit Hexadecimal)", "-g", plainSetting("UserID")),
	run("DCI Update Mode", "-g", maybeSetting("DCIUpdateMode")),
	run("FPGA Start-Up Clock", "-g", setting("StartUpClk")),
	run("Done (Output Events)", "-g", maybeSetting("DONE_cycle")),
	run("Enable Outputs (Output Events)", "-g", maybeSetting("GTS_cycle")),
	run("Release Write Enable (Output Events)", "-g", maybeSetting("GWE_cycle")),
	run("Wait for DCM and PLL Lock (Output Events)", "-g", maybeSetting("LCK_cycle")),
	run("Wait for DCI Match (Output Events)", "-g", maybeSetting("Match_cycle")),
	run("Security", "-g", setting("Security")),
	run("Enable Internal Done Pipe", "-g", setting("DonePipe")),
	run("Drive Done Pin High", "-g", setting("DriveDone")),
	run("Encrypt Bitstream", "-g", setting("Encrypt")),
	run("Create Bit File", "-j", formatter.FlagIfBool(false)),
	bare("Other Bitgen Command Line Options"),
)
