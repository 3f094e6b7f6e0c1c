package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/pasajeros/internal/records"
)

// PassengerServiceClient calls a remote PassengerService.
type PassengerServiceClient struct {
	listPassengers   *connect.Client[ListPassengersRequest, ListPassengersResponse]
	addPassenger     *connect.Client[AddPassengerRequest, PassengerResponse]
	updatePassenger  *connect.Client[UpdatePassengerRequest, PassengerResponse]
	deletePassenger  *connect.Client[PassengerIDRequest, Empty]
	toggleTraveled   *connect.Client[PassengerIDRequest, PassengerResponse]
	togglePaid       *connect.Client[PassengerIDRequest, PassengerResponse]
	exportPassengers *connect.Client[ExportPassengersRequest, ExportPassengersResponse]
	watchChanges     *connect.Client[Empty, records.Change]
}

// NewPassengerServiceClient creates a client for the service at baseURL.
func NewPassengerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *PassengerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{withJSON()}, opts...)
	return &PassengerServiceClient{
		listPassengers:   connect.NewClient[ListPassengersRequest, ListPassengersResponse](httpClient, baseURL+ListPassengersProcedure, opts...),
		addPassenger:     connect.NewClient[AddPassengerRequest, PassengerResponse](httpClient, baseURL+AddPassengerProcedure, opts...),
		updatePassenger:  connect.NewClient[UpdatePassengerRequest, PassengerResponse](httpClient, baseURL+UpdatePassengerProcedure, opts...),
		deletePassenger:  connect.NewClient[PassengerIDRequest, Empty](httpClient, baseURL+DeletePassengerProcedure, opts...),
		toggleTraveled:   connect.NewClient[PassengerIDRequest, PassengerResponse](httpClient, baseURL+ToggleTraveledProcedure, opts...),
		togglePaid:       connect.NewClient[PassengerIDRequest, PassengerResponse](httpClient, baseURL+TogglePaidProcedure, opts...),
		exportPassengers: connect.NewClient[ExportPassengersRequest, ExportPassengersResponse](httpClient, baseURL+ExportPassengersProcedure, opts...),
		watchChanges:     connect.NewClient[Empty, records.Change](httpClient, baseURL+WatchChangesProcedure, opts...),
	}
}

func (c *PassengerServiceClient) ListPassengers(ctx context.Context, req *connect.Request[ListPassengersRequest]) (*connect.Response[ListPassengersResponse], error) {
	return c.listPassengers.CallUnary(ctx, req)
}

func (c *PassengerServiceClient) AddPassenger(ctx context.Context, req *connect.Request[AddPassengerRequest]) (*connect.Response[PassengerResponse], error) {
	return c.addPassenger.CallUnary(ctx, req)
}

func (c *PassengerServiceClient) UpdatePassenger(ctx context.Context, req *connect.Request[UpdatePassengerRequest]) (*connect.Response[PassengerResponse], error) {
	return c.updatePassenger.CallUnary(ctx, req)
}

func (c *PassengerServiceClient) DeletePassenger(ctx context.Context, req *connect.Request[PassengerIDRequest]) (*connect.Response[Empty], error) {
	return c.deletePassenger.CallUnary(ctx, req)
}

func (c *PassengerServiceClient) ToggleTraveled(ctx context.Context, req *connect.Request[PassengerIDRequest]) (*connect.Response[PassengerResponse], error) {
	return c.toggleTraveled.CallUnary(ctx, req)
}

func (c *PassengerServiceClient) TogglePaid(ctx context.Context, req *connect.Request[PassengerIDRequest]) (*connect.Response[PassengerResponse], error) {
	return c.togglePaid.CallUnary(ctx, req)
}

func (c *PassengerServiceClient) ExportPassengers(ctx context.Context, req *connect.Request[ExportPassengersRequest]) (*connect.Response[ExportPassengersResponse], error) {
	return c.exportPassengers.CallUnary(ctx, req)
}

func (c *PassengerServiceClient) WatchChanges(ctx context.Context, req *connect.Request[Empty]) (*connect.ServerStreamForClient[records.Change], error) {
	return c.watchChanges.CallServerStream(ctx, req)
}

// SettingsServiceClient calls a remote SettingsService.
type SettingsServiceClient struct {
	getLocations      *connect.Client[Empty, LocationsResponse]
	saveLocations     *connect.Client[SaveLocationsRequest, LocationsResponse]
	addDestination    *connect.Client[DestinationRequest, LocationsResponse]
	removeDestination *connect.Client[DestinationRequest, LocationsResponse]
	addPickupPoint    *connect.Client[PickupPointRequest, LocationsResponse]
	removePickupPoint *connect.Client[PickupPointRequest, LocationsResponse]
	getSettings       *connect.Client[Empty, SettingsMessage]
	saveSettings      *connect.Client[SettingsMessage, SettingsMessage]
	exportBackup      *connect.Client[Empty, BackupMessage]
	importBackup      *connect.Client[BackupMessage, Empty]
}

// NewSettingsServiceClient creates a client for the service at baseURL.
func NewSettingsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SettingsServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{withJSON()}, opts...)
	return &SettingsServiceClient{
		getLocations:      connect.NewClient[Empty, LocationsResponse](httpClient, baseURL+GetLocationsProcedure, opts...),
		saveLocations:     connect.NewClient[SaveLocationsRequest, LocationsResponse](httpClient, baseURL+SaveLocationsProcedure, opts...),
		addDestination:    connect.NewClient[DestinationRequest, LocationsResponse](httpClient, baseURL+AddDestinationProcedure, opts...),
		removeDestination: connect.NewClient[DestinationRequest, LocationsResponse](httpClient, baseURL+RemoveDestinationProcedure, opts...),
		addPickupPoint:    connect.NewClient[PickupPointRequest, LocationsResponse](httpClient, baseURL+AddPickupPointProcedure, opts...),
		removePickupPoint: connect.NewClient[PickupPointRequest, LocationsResponse](httpClient, baseURL+RemovePickupPointProcedure, opts...),
		getSettings:       connect.NewClient[Empty, SettingsMessage](httpClient, baseURL+GetSettingsProcedure, opts...),
		saveSettings:      connect.NewClient[SettingsMessage, SettingsMessage](httpClient, baseURL+SaveSettingsProcedure, opts...),
		exportBackup:      connect.NewClient[Empty, BackupMessage](httpClient, baseURL+ExportBackupProcedure, opts...),
		importBackup:      connect.NewClient[BackupMessage, Empty](httpClient, baseURL+ImportBackupProcedure, opts...),
	}
}

func (c *SettingsServiceClient) GetLocations(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[LocationsResponse], error) {
	return c.getLocations.CallUnary(ctx, req)
}

func (c *SettingsServiceClient) SaveLocations(ctx context.Context, req *connect.Request[SaveLocationsRequest]) (*connect.Response[LocationsResponse], error) {
	return c.saveLocations.CallUnary(ctx, req)
}

func (c *SettingsServiceClient) AddDestination(ctx context.Context, req *connect.Request[DestinationRequest]) (*connect.Response[LocationsResponse], error) {
	return c.addDestination.CallUnary(ctx, req)
}

func (c *SettingsServiceClient) RemoveDestination(ctx context.Context, req *connect.Request[DestinationRequest]) (*connect.Response[LocationsResponse], error) {
	return c.removeDestination.CallUnary(ctx, req)
}

func (c *SettingsServiceClient) AddPickupPoint(ctx context.Context, req *connect.Request[PickupPointRequest]) (*connect.Response[LocationsResponse], error) {
	return c.addPickupPoint.CallUnary(ctx, req)
}

func (c *SettingsServiceClient) RemovePickupPoint(ctx context.Context, req *connect.Request[PickupPointRequest]) (*connect.Response[LocationsResponse], error) {
	return c.removePickupPoint.CallUnary(ctx, req)
}

func (c *SettingsServiceClient) GetSettings(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[SettingsMessage], error) {
	return c.getSettings.CallUnary(ctx, req)
}

func (c *SettingsServiceClient) SaveSettings(ctx context.Context, req *connect.Request[SettingsMessage]) (*connect.Response[SettingsMessage], error) {
	return c.saveSettings.CallUnary(ctx, req)
}

func (c *SettingsServiceClient) ExportBackup(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[BackupMessage], error) {
	return c.exportBackup.CallUnary(ctx, req)
}

func (c *SettingsServiceClient) ImportBackup(ctx context.Context, req *connect.Request[BackupMessage]) (*connect.Response[Empty], error) {
	return c.importBackup.CallUnary(ctx, req)
}
