package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DisplayEvent describes an exchanging SSE event with the virtual display
// viewer.
type DisplayEvent interface {
	Type() DisplayEventType
}

// DisplayEventType is a type of message sent to the viewer.
type DisplayEventType string

const (
	DisplayEventTypeInit  DisplayEventType = "init"
	DisplayEventTypeError DisplayEventType = "error"
	DisplayEventTypeFrame DisplayEventType = "frame"
)

// DisplayInit is the init message sent to the viewer. It describes the
// display shape so the viewer can lay out the lens matrix.
type DisplayInit struct {
	Rows         int    `json:"rows"`
	Cols         int    `json:"cols"`
	RowWidths    []int  `json:"row_widths"`
	RowOffsets   []int  `json:"row_offsets"`
	SessionToken string `json:"session_token"`
}

func (DisplayInit) Type() DisplayEventType {
	return DisplayEventTypeInit
}

// DisplayError is the error message sent to the viewer.
// It contains the error message.
type DisplayError struct {
	Message string `json:"message"`
}

func (DisplayError) Type() DisplayEventType {
	return DisplayEventTypeError
}

// DisplayFrame is the frame message sent to the viewer. It contains the
// full flat buffer of the display.
type DisplayFrame struct {
	Pixels []int `json:"pixels"`
}

func (DisplayFrame) Type() DisplayEventType {
	return DisplayEventTypeFrame
}

type sseEvent struct {
	Type string
	Data any
}

type writeFlusher interface {
	io.Writer
	http.Flusher
}

func writeSSE(w writeFlusher, ev sseEvent) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, ev.Data)
	w.Flush()
}

func displayEventToSSE(event DisplayEvent) sseEvent {
	b, err := json.Marshal(event)
	if err != nil {
		panic(err)
	}
	return sseEvent{
		Type: string(event.Type()),
		Data: b,
	}
}
