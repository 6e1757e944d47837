// Package config provides the "config" scope shared by every scopes tool:
// list, get, set and unset keys of ~/.scopesrc, and pick a theme.
package config

import (
	"github.com/footprint-tools/scopes/internal/config"
	"github.com/footprint-tools/scopes/internal/ui"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	Set        func([]string, string, string) ([]string, bool)
	Unset      func([]string, string) ([]string, bool)
	Get        func(string) (string, bool)
	GetAll     func() (map[string]string, error)
	WithLock   func(func() error) error
	Select     ui.SelectFunc
}

func DefaultDeps() Deps {
	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		Set:        config.Set,
		Unset:      config.Unset,
		Get:        config.Get,
		GetAll:     config.GetAll,
		WithLock:   config.WithLock,
		Select:     ui.SelectList,
	}
}
