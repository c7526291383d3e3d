// Package dto carries the data shapes exchanged between the purchase flow
// and its transports: chat views with inline keyboards, the callback-data
// grammar, and ops-API responses.
package dto

// Button is one inline keyboard control. Data is the callback payload
// delivered back when it is pressed.
type Button struct {
	Text string `json:"text"`
	Data string `json:"data"`
}

// View is a rendered chat screen: message text plus keyboard rows.
type View struct {
	Text     string     `json:"text"`
	Keyboard [][]Button `json:"keyboard"`
}

// Reply is the outcome of one flow interaction. A nil View keeps the
// current screen; Toast is a short acknowledgement shown without
// replacing the screen.
type Reply struct {
	View  *View
	Toast string
}

func ViewReply(v View) Reply {
	return Reply{View: &v}
}

func ToastReply(text string) Reply {
	return Reply{Toast: text}
}
