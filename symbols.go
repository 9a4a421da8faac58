package gs

// Entry points every GS plugin exports (from PS2Edefs.h).
const (
	symGetLibType     = "PS2EgetLibType"
	symGetLibName     = "PS2EgetLibName"
	symGIFTransfer    = "GSgifTransfer"
	symGIFTransfer1   = "GSgifTransfer1"
	symGIFTransfer2   = "GSgifTransfer2"
	symGIFTransfer3   = "GSgifTransfer3"
	symVsync          = "GSvsync"
	symReset          = "GSreset"
	symReadFIFO2      = "GSreadFIFO2"
	symSetGameCRC     = "GSsetGameCRC"
	symFreeze         = "GSfreeze"
	symOpen           = "GSopen"
	symClose          = "GSclose"
	symShutdown       = "GSshutdown"
	symConfigure      = "GSconfigure"
	symSetBaseMem     = "GSsetBaseMem"
	symSetSettingsDir = "GSsetSettingsDir"
	symInit           = "GSinit"
	symMakeSnapshot   = "GSmakeSnapshot"
)
