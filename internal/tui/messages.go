package tui

import "github.com/MKhiriev/go-qr-keeper/models"

type scanDoneMsg struct {
	view models.ResultView
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
