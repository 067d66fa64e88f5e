package core

// EventCode identifies a class of engine events. Application codes start at
// EVENT_CODE_USER.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = iota + 1
	// Keyboard key pressed. Data: *KeyEvent.
	EVENT_CODE_KEY_PRESSED
	// Keyboard key released. Data: *KeyEvent.
	EVENT_CODE_KEY_RELEASED
	// Mouse button pressed. Data: *MouseEvent.
	EVENT_CODE_BUTTON_PRESSED
	// Mouse button released. Data: *MouseEvent.
	EVENT_CODE_BUTTON_RELEASED
	// Mouse moved. Data: *MouseEvent.
	EVENT_CODE_MOUSE_MOVED
	// Mouse wheel. Data: *MouseEvent.
	EVENT_CODE_MOUSE_WHEEL
	// Framebuffer resized. Data: *SystemEvent.
	EVENT_CODE_RESIZED
	// An asset on disk changed. Data: *AssetEvent.
	EVENT_CODE_ASSET_CHANGED

	EVENT_CODE_USER EventCode = 0xFF
)

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

type MouseEvent struct {
	Button Button
	PosX   int32
	PosY   int32
	Scroll int8
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type AssetEvent struct {
	Path string
}

// FnOnEvent handles one event. Returning true stops propagation.
type FnOnEvent func(context EventContext) bool

type registeredEvent struct {
	id       int
	callback FnOnEvent
}

type eventSystemState struct {
	nextID     int
	registered map[EventCode][]registeredEvent
}

var eventState *eventSystemState

func EventSystemInitialize() bool {
	if eventState != nil {
		return false
	}
	eventState = &eventSystemState{
		registered: make(map[EventCode][]registeredEvent),
	}
	return true
}

func EventSystemShutdown() error {
	eventState = nil
	return nil
}

// EventRegister adds a listener for code and returns a handle usable with
// EventUnregister, or -1 if the event system is not running.
func EventRegister(code EventCode, onEvent FnOnEvent) int {
	if eventState == nil {
		return -1
	}
	eventState.nextID++
	eventState.registered[code] = append(eventState.registered[code], registeredEvent{
		id:       eventState.nextID,
		callback: onEvent,
	})
	return eventState.nextID
}

func EventUnregister(code EventCode, id int) bool {
	if eventState == nil {
		return false
	}
	events := eventState.registered[code]
	for i, e := range events {
		if e.id == id {
			eventState.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	return false
}

// EventFire delivers context to listeners in registration order until one
// reports it handled. It returns whether the event was handled.
func EventFire(context EventContext) bool {
	if eventState == nil {
		return false
	}
	for _, e := range eventState.registered[context.Type] {
		if e.callback(context) {
			return true
		}
	}
	return false
}
