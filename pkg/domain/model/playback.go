package model

// PlaybackState mirrors the display environment's fullscreen mode
type PlaybackState struct {
	IsFullscreen bool `json:"is_fullscreen"`
}

// FullscreenRequest is an outstanding request towards the display environment
type FullscreenRequest string

const (
	FullscreenRequestNone  FullscreenRequest = ""
	FullscreenRequestEnter FullscreenRequest = "enter"
	FullscreenRequestExit  FullscreenRequest = "exit"
)

// PendingFullscreen is what the page polls for: which request to carry out, and on
// which surface when entering
type PendingFullscreen struct {
	Request FullscreenRequest `json:"request"`
	Surface string            `json:"surface,omitempty"`
}
