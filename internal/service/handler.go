// Package service exposes the record store over Connect RPC. Messages are
// plain Go structs carried as JSON.
package service

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/pasajeros/internal/records"
)

const (
	PassengerServiceName = "pasajeros.v1.PassengerService"
	SettingsServiceName  = "pasajeros.v1.SettingsService"
)

// Procedure paths.
const (
	ListPassengersProcedure   = "/" + PassengerServiceName + "/ListPassengers"
	AddPassengerProcedure     = "/" + PassengerServiceName + "/AddPassenger"
	UpdatePassengerProcedure  = "/" + PassengerServiceName + "/UpdatePassenger"
	DeletePassengerProcedure  = "/" + PassengerServiceName + "/DeletePassenger"
	ToggleTraveledProcedure   = "/" + PassengerServiceName + "/ToggleTraveled"
	TogglePaidProcedure       = "/" + PassengerServiceName + "/TogglePaid"
	ExportPassengersProcedure = "/" + PassengerServiceName + "/ExportPassengers"
	WatchChangesProcedure     = "/" + PassengerServiceName + "/WatchChanges"

	GetLocationsProcedure      = "/" + SettingsServiceName + "/GetLocations"
	SaveLocationsProcedure     = "/" + SettingsServiceName + "/SaveLocations"
	AddDestinationProcedure    = "/" + SettingsServiceName + "/AddDestination"
	RemoveDestinationProcedure = "/" + SettingsServiceName + "/RemoveDestination"
	AddPickupPointProcedure    = "/" + SettingsServiceName + "/AddPickupPoint"
	RemovePickupPointProcedure = "/" + SettingsServiceName + "/RemovePickupPoint"
	GetSettingsProcedure       = "/" + SettingsServiceName + "/GetSettings"
	SaveSettingsProcedure      = "/" + SettingsServiceName + "/SaveSettings"
	ExportBackupProcedure      = "/" + SettingsServiceName + "/ExportBackup"
	ImportBackupProcedure      = "/" + SettingsServiceName + "/ImportBackup"
)

// NewPassengerServiceHandler returns the path prefix and handler to mount on
// a mux.
func NewPassengerServiceHandler(svc *PassengerService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{withJSON()}, opts...)
	readOnly := append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))

	mux := http.NewServeMux()
	mux.Handle(ListPassengersProcedure, connect.NewUnaryHandler(ListPassengersProcedure, svc.ListPassengers, readOnly...))
	mux.Handle(AddPassengerProcedure, connect.NewUnaryHandler(AddPassengerProcedure, svc.AddPassenger, opts...))
	mux.Handle(UpdatePassengerProcedure, connect.NewUnaryHandler(UpdatePassengerProcedure, svc.UpdatePassenger, opts...))
	mux.Handle(DeletePassengerProcedure, connect.NewUnaryHandler(DeletePassengerProcedure, svc.DeletePassenger, opts...))
	mux.Handle(ToggleTraveledProcedure, connect.NewUnaryHandler(ToggleTraveledProcedure, svc.ToggleTraveled, opts...))
	mux.Handle(TogglePaidProcedure, connect.NewUnaryHandler(TogglePaidProcedure, svc.TogglePaid, opts...))
	mux.Handle(ExportPassengersProcedure, connect.NewUnaryHandler(ExportPassengersProcedure, svc.ExportPassengers, readOnly...))
	mux.Handle(WatchChangesProcedure, connect.NewServerStreamHandler(WatchChangesProcedure, svc.WatchChanges, opts...))

	return "/" + PassengerServiceName + "/", mux
}

// NewSettingsServiceHandler returns the path prefix and handler to mount on a
// mux.
func NewSettingsServiceHandler(svc *SettingsService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{withJSON()}, opts...)
	readOnly := append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))

	mux := http.NewServeMux()
	mux.Handle(GetLocationsProcedure, connect.NewUnaryHandler(GetLocationsProcedure, svc.GetLocations, readOnly...))
	mux.Handle(SaveLocationsProcedure, connect.NewUnaryHandler(SaveLocationsProcedure, svc.SaveLocations, opts...))
	mux.Handle(AddDestinationProcedure, connect.NewUnaryHandler(AddDestinationProcedure, svc.AddDestination, opts...))
	mux.Handle(RemoveDestinationProcedure, connect.NewUnaryHandler(RemoveDestinationProcedure, svc.RemoveDestination, opts...))
	mux.Handle(AddPickupPointProcedure, connect.NewUnaryHandler(AddPickupPointProcedure, svc.AddPickupPoint, opts...))
	mux.Handle(RemovePickupPointProcedure, connect.NewUnaryHandler(RemovePickupPointProcedure, svc.RemovePickupPoint, opts...))
	mux.Handle(GetSettingsProcedure, connect.NewUnaryHandler(GetSettingsProcedure, svc.GetSettings, readOnly...))
	mux.Handle(SaveSettingsProcedure, connect.NewUnaryHandler(SaveSettingsProcedure, svc.SaveSettings, opts...))
	mux.Handle(ExportBackupProcedure, connect.NewUnaryHandler(ExportBackupProcedure, svc.ExportBackup, readOnly...))
	mux.Handle(ImportBackupProcedure, connect.NewUnaryHandler(ImportBackupProcedure, svc.ImportBackup, opts...))

	return "/" + SettingsServiceName + "/", mux
}

// Register mounts both services for store on mux.
func Register(mux *http.ServeMux, store *records.Store, opts ...connect.HandlerOption) {
	mux.Handle(NewPassengerServiceHandler(NewPassengerService(store), opts...))
	mux.Handle(NewSettingsServiceHandler(NewSettingsService(store), opts...))
}
