// Package engine assembles the store, repositories and services into one
// ready-to-use unit. Library callers (and the cmd shell) build everything
// through New instead of wiring repositories by hand.
package engine

import (
	"lendstock.GO/core/events"
	"lendstock.GO/model/entity"
	categoryRepo "lendstock.GO/model/repository/category"
	historyRepo "lendstock.GO/model/repository/history"
	itemRepo "lendstock.GO/model/repository/item"
	notificationRepo "lendstock.GO/model/repository/notification"
	supplierRepo "lendstock.GO/model/repository/supplier"
	"lendstock.GO/service/backup"
	"lendstock.GO/service/lending"
	"lendstock.GO/store"
)

type Engine struct {
	Store         store.Store
	Events        *events.Bus
	History       *historyRepo.Repository
	Categories    *categoryRepo.Repository
	Suppliers     *supplierRepo.Repository
	Notifications *notificationRepo.Repository
	Items         *itemRepo.Repository
	Lending       *lending.Service
	Backup        *backup.Service
}

func New(st store.Store) *Engine {
	bus := events.NewBus()
	history := historyRepo.NewRepository(st)
	categories := categoryRepo.NewRepository(st, history)
	suppliers := supplierRepo.NewRepository(st, history)
	notifications := notificationRepo.NewRepository(st, bus)
	items := itemRepo.NewRepository(st, history, categories, suppliers, notifications)
	return &Engine{
		Store:         st,
		Events:        bus,
		History:       history,
		Categories:    categories,
		Suppliers:     suppliers,
		Notifications: notifications,
		Items:         items,
		Lending:       lending.NewService(st, items, history, notifications),
		Backup:        backup.NewService(st),
	}
}

// Settings reads the stored settings, falling back to the defaults.
func (e *Engine) Settings() entity.Settings {
	return store.Load(e.Store, store.KeySettings, entity.DefaultSettings())
}

// SaveSettings persists the settings singleton. Stored item statuses keep
// their old snapshot until Items.RecomputeAll or the next per-item save.
func (e *Engine) SaveSettings(s entity.Settings) error {
	if !e.Store.IsAvailable() {
		return store.ErrUnavailable
	}
	return store.Save(e.Store, store.KeySettings, s)
}

// CurrentUser reads the session user written by the session layer. The
// engine treats it as read-only.
func (e *Engine) CurrentUser() entity.User {
	return store.Load(e.Store, store.KeyCurrentUser, entity.User{Username: "Unknown"})
}
