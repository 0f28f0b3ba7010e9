package views

import "jarscope/internal/application"

// ViewState contains common state shared by all view models.
// Embed it in view models to get dimensions and the status notice.
type ViewState struct {
	Width  int
	Height int
	Notice *application.Notice
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetNotice shows an outcome notice until the next key press
func (s *ViewState) SetNotice(n application.Notice) {
	s.Notice = &n
}

// SetMessage shows a plain message
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Notice = &application.Notice{Title: msg, IsError: isErr}
}

// ClearNotice removes the current notice
func (s *ViewState) ClearNotice() {
	s.Notice = nil
}

// RenderNotice renders the current notice, or "" when there is none
func (s *ViewState) RenderNotice() string {
	if s.Notice == nil {
		return ""
	}
	return RenderMessage(s.Notice.String(), s.Notice.IsError)
}
