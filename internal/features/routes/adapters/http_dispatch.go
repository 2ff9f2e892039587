package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rider-route-engine/internal/core/config"
	"rider-route-engine/internal/core/httpclient"
	"rider-route-engine/internal/features/routes/domain"
)

// HTTPDispatchAdapter implements the DispatchSource and ProgressReporter
// interfaces against the dispatch service's REST API.
type HTTPDispatchAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the dispatch service connection details.
	config config.DispatchConfig
}

// NewHTTPDispatchAdapter creates a new instance of HTTPDispatchAdapter.
func NewHTTPDispatchAdapter(cfg config.DispatchConfig) *HTTPDispatchAdapter {
	return &HTTPDispatchAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// GetAssignment fetches the rider's route assignment for a class, restricted
// to the assignable statuses. Returns nil when the dispatcher has none.
func (a *HTTPDispatchAdapter) GetAssignment(ctx context.Context, riderID string, class domain.DeliveryClass) (*domain.Assignment, error) {
	statuses := make([]string, 0, len(domain.AssignableStatuses))
	for _, s := range domain.AssignableStatuses {
		statuses = append(statuses, string(s))
	}

	endpoint := fmt.Sprintf("%s/api/v1/riders/%s/route-assignments?class=%s&statuses=%s",
		a.config.BaseURL,
		url.PathEscape(riderID),
		url.QueryEscape(string(class)),
		url.QueryEscape(strings.Join(statuses, ",")),
	)

	var wireAssignments []dispatchAssignment
	if err := a.getJSON(ctx, endpoint, &wireAssignments); err != nil {
		return nil, fmt.Errorf("fetch assignment: %w", err)
	}

	if len(wireAssignments) == 0 {
		return nil, nil
	}

	// The dispatcher guarantees at most one assignable assignment per class.
	return mapAssignment(wireAssignments[0], riderID, class), nil
}

// GetPendingOrders fetches the rider's unresolved delivery orders.
func (a *HTTPDispatchAdapter) GetPendingOrders(ctx context.Context, riderID string) ([]domain.StopCandidate, error) {
	endpoint := fmt.Sprintf("%s/api/v1/riders/%s/orders?state=unresolved",
		a.config.BaseURL, url.PathEscape(riderID))

	var wireOrders []dispatchOrder
	if err := a.getJSON(ctx, endpoint, &wireOrders); err != nil {
		return nil, fmt.Errorf("fetch pending orders: %w", err)
	}

	candidates := make([]domain.StopCandidate, 0, len(wireOrders))
	for _, o := range wireOrders {
		candidates = append(candidates, mapOrder(o))
	}
	return candidates, nil
}

// MarkPickedUp reports a parcel pickup back to the dispatch service.
func (a *HTTPDispatchAdapter) MarkPickedUp(ctx context.Context, orderID string) error {
	return a.postStatus(ctx, orderID, "pickup")
}

// MarkDelivered reports a completed delivery back to the dispatch service.
func (a *HTTPDispatchAdapter) MarkDelivered(ctx context.Context, orderID string) error {
	return a.postStatus(ctx, orderID, "delivery")
}

// HealthCheck verifies that the dispatch API is reachable and credentials are valid.
func (a *HTTPDispatchAdapter) HealthCheck(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/api/v1/health", a.config.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}
	a.authorize(req)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}

// getJSON executes an authorized GET and decodes the response body into out.
func (a *HTTPDispatchAdapter) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	a.authorize(req)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dispatch API returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// postStatus posts a completion event for an order.
func (a *HTTPDispatchAdapter) postStatus(ctx context.Context, orderID, event string) error {
	endpoint := fmt.Sprintf("%s/api/v1/orders/%s/%s",
		a.config.BaseURL, url.PathEscape(orderID), event)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	a.authorize(req)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("dispatch API returned status: %d", resp.StatusCode)
	}
	return nil
}

// authorize attaches the rider client's API key when configured.
func (a *HTTPDispatchAdapter) authorize(req *http.Request) {
	if a.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.config.APIKey)
	}
}

// mapAssignment converts a raw dispatch assignment into the domain entity.
func mapAssignment(w dispatchAssignment, riderID string, class domain.DeliveryClass) *domain.Assignment {
	stops := make([]domain.AssignmentStop, 0, len(w.Stops))
	for _, s := range w.Stops {
		stops = append(stops, domain.AssignmentStop{
			OrderID:        s.OrderID,
			TrackingRef:    s.TrackingRef,
			Recipient:      s.Recipient,
			Address:        s.Address,
			Geo:            mapGeo(s.Lat, s.Lng),
			Ordinal:        s.Ordinal,
			RawStatus:      s.Status,
			ServiceMinutes: s.ServiceMinutes,
		})
	}

	return &domain.Assignment{
		ID:      w.ID,
		RiderID: riderID,
		Class:   class,
		Status:  domain.AssignmentStatus(strings.ToUpper(w.Status)),
		Stops:   stops,
	}
}

// mapOrder converts a raw dispatch order into a stop candidate.
func mapOrder(w dispatchOrder) domain.StopCandidate {
	return domain.StopCandidate{
		ID:                      w.ID,
		TrackingRef:             w.TrackingRef,
		RecipientName:           w.RecipientName,
		Address:                 w.Address,
		Geo:                     mapGeo(w.Lat, w.Lng),
		ScheduledDeliveryTime:   w.ScheduledDeliveryTime,
		EstimatedServiceMinutes: w.ServiceMinutes,
		RawStatus:               w.Status,
	}
}

// mapGeo treats the zero-zero coordinate as "no known location".
func mapGeo(lat, lng float64) *domain.GeoPoint {
	p := domain.GeoPoint{Latitude: lat, Longitude: lng}
	if !p.Valid() {
		return nil
	}
	return &p
}

// internal structs for mapping

// dispatchAssignment represents the JSON structure of a route assignment
// from the dispatch API.
type dispatchAssignment struct {
	// ID is the assignment identifier.
	ID string `json:"id"`
	// Status is the assignment lifecycle status.
	Status string `json:"status"`
	// Stops is the ordered stop list.
	Stops []dispatchAssignmentStop `json:"stops"`
}

// dispatchAssignmentStop represents one stop record in a dispatch assignment.
type dispatchAssignmentStop struct {
	// OrderID links the stop to its order.
	OrderID string `json:"order_id"`
	// TrackingRef is the shipment tracking reference.
	TrackingRef string `json:"tracking_ref"`
	// Recipient is the delivery recipient name.
	Recipient string `json:"recipient"`
	// Address is the delivery address.
	Address string `json:"address"`
	// Lat is the stop latitude; zero together with Lng means unknown.
	Lat float64 `json:"lat"`
	// Lng is the stop longitude.
	Lng float64 `json:"lng"`
	// Ordinal is the dispatcher's visiting position.
	Ordinal int `json:"ordinal"`
	// Status is the per-stop delivery status.
	Status string `json:"status"`
	// ServiceMinutes is the expected time at the door.
	ServiceMinutes int `json:"service_minutes"`
}

// dispatchOrder represents the JSON structure of a pending order from the
// dispatch API.
type dispatchOrder struct {
	// ID is the order identifier.
	ID string `json:"id"`
	// TrackingRef is the shipment tracking reference.
	TrackingRef string `json:"tracking_ref"`
	// RecipientName is the delivery recipient name.
	RecipientName string `json:"recipient_name"`
	// Address is the delivery address.
	Address string `json:"address"`
	// Lat is the delivery latitude; zero together with Lng means unknown.
	Lat float64 `json:"lat"`
	// Lng is the delivery longitude.
	Lng float64 `json:"lng"`
	// ScheduledDeliveryTime is the promised slot, null for same-day work.
	ScheduledDeliveryTime *time.Time `json:"scheduled_delivery_time"`
	// ServiceMinutes is the per-order service estimate, 0 when unspecified.
	ServiceMinutes int `json:"service_minutes"`
	// Status is the raw order status.
	Status string `json:"status"`
}
