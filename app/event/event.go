// Package event provides definitions for global DOM
// events that are dispatched by the `HX-Trigger`
// header in HTMX requests.
package event

import (
	"github.com/angelofallars/htmx-go"
)

// Event is a client-side event that can be triggered
// on the server.
//
// Event names should be snake-case so Alpine.js
// can parse them correctly.
type Event string

// Event satisfies [fmt.Stringer]
func (e Event) String() string { return string(e) }

const SetErrMessage Event = "set-err-message"

func TriggerSetErrMessage(message string) htmx.EventTrigger {
	return htmx.TriggerDetail(SetErrMessage.String(), message)
}

const DisableExport Event = "disable-export"

var TriggerDisableExport = htmx.Trigger(DisableExport.String())

const EnableExport Event = "enable-export"

var TriggerEnableExport = htmx.Trigger(EnableExport.String())
