package device

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// DebugMessage is a message emitted by the GL implementation of a debug
// context.
type DebugMessage struct {
	Source   uint32
	Type     uint32
	ID       uint32
	Severity uint32
	Message  string
}

var severityNames = map[uint32]string{
	gl.DEBUG_SEVERITY_HIGH:         "high",
	gl.DEBUG_SEVERITY_MEDIUM:       "medium",
	gl.DEBUG_SEVERITY_LOW:          "low",
	gl.DEBUG_SEVERITY_NOTIFICATION: "note",
}

func (dm DebugMessage) SeverityString() string {
	return severityNames[dm.Severity]
}

func (dm DebugMessage) IsNotification() bool {
	return dm.Severity == gl.DEBUG_SEVERITY_NOTIFICATION
}

func (dm DebugMessage) String() string {
	return fmt.Sprintf("[%s] %s", dm.SeverityString(), dm.Message)
}

// debugOutput is the receiving end of the GL debug callback. Messages that
// arrive after close are discarded.
type debugOutput struct {
	mu sync.Mutex
	ch chan DebugMessage
}

func (d *debugOutput) send(dm DebugMessage) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ch == nil {
		return
	}
	select {
	case d.ch <- dm:
	default:
	}
}

func (d *debugOutput) close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ch != nil {
		close(d.ch)
		d.ch = nil
	}
}

// DebugOutput enables GL debug output and streams the messages over the
// returned channel until the device is closed. Messages are dropped if the
// channel is full. Repeated calls return the same channel.
//
// The context must support KHR_debug, which in practice means it should have
// been created as a debug context.
func (dev *Device) DebugOutput() <-chan DebugMessage {
	dev.debug.mu.Lock()
	ch := dev.debug.ch
	if ch != nil {
		dev.debug.mu.Unlock()
		return ch
	}
	ch = make(chan DebugMessage, 32)
	dev.debug.ch = ch
	dev.debug.mu.Unlock()

	// Synchronous output runs the callback on the thread that caused the
	// message, so no message can arrive once the callback is removed.
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, 0, nil, true)
	gl.DebugMessageCallback(func(source, typ, id, severity uint32, _ int32, message string, _ unsafe.Pointer) {
		dev.debug.send(DebugMessage{
			Source:   source,
			Type:     typ,
			ID:       id,
			Severity: severity,
			Message:  message,
		})
	}, nil)
	return ch
}

// stopDebugOutput removes the callback installed by DebugOutput and closes
// its channel.
func (dev *Device) stopDebugOutput() {
	dev.debug.mu.Lock()
	enabled := dev.debug.ch != nil
	dev.debug.mu.Unlock()
	if !enabled {
		return
	}
	gl.DebugMessageCallback(nil, nil)
	gl.Disable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.Disable(gl.DEBUG_OUTPUT)
	dev.debug.close()
}
