package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentPause  // p
	IntentDebug  // d
	IntentResize // Terminal resize event

	// Game actions
	IntentWork    // w, space, work button
	IntentUpgrade // u, upgrade button
	IntentExpand  // e, expand button
)

var intentNames = map[IntentType]string{
	IntentNone:    "None",
	IntentQuit:    "Quit",
	IntentPause:   "Pause",
	IntentDebug:   "Debug",
	IntentResize:  "Resize",
	IntentWork:    "Work",
	IntentUpgrade: "Upgrade",
	IntentExpand:  "Expand",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "Unknown"
}
