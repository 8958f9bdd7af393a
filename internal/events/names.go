package events

// Event names delivered to the renderer. The two readConfig result channels
// are consumed by existing frontends and must not change.
const (
	ReadConfigResultsIModel = "readConfigResultsIModel"
	ReadConfigResults       = "readConfigResults"
	ReadConfigFailed        = "readConfigFailed"

	SettingsUpdated = "settingsUpdated"
	SettingsChanged = "settingsChanged"

	DrawingSelected         = "drawingSelected"
	MenuRefresh             = "menu:refresh"
	RPCInterfacesRegistered = "rpcInterfacesRegistered"
)

// ReadTargetIModel is the discriminator that routes a settings read to the
// iModel-specific channel.
const ReadTargetIModel = "imodel"

// ReadChannel picks the result channel for a read requested with arg.
func ReadChannel(arg string) string {
	if arg == ReadTargetIModel {
		return ReadConfigResultsIModel
	}
	return ReadConfigResults
}
