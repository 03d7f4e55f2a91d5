package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jarcoal/httpmock"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/store"
)

const (
	RequestID     = 123
	RequestNumber = "ORD-2024-0001"
	RequestTitle  = "Mobile clinic unit"
)

var CreatedDate = time.Date(2024, time.March, 1, 16, 54, 2, 651000000, time.UTC) // "2024-03-01T16:54:02.651Z"

var AuthResponder, _ = httpmock.NewJsonResponder(http.StatusOK, map[string]string{"access_token": "ya29.Gl0UBZ3"})

var NotFoundResponder, _ = httpmock.NewJsonResponder(http.StatusNotFound, nil)
var GarbageResponder, _ = httpmock.NewJsonResponder(http.StatusOK, "{\"foo\": \"bar\"")
var UnauthorizedResponder, _ = httpmock.NewJsonResponder(http.StatusUnauthorized, nil)

// ServiceRequestFixture builds a record in the given status.
func ServiceRequestFixture(status request.Status) request.ServiceRequest {
	return request.ServiceRequest{
		RequestID:     RequestID,
		RequestNumber: RequestNumber,
		StatusID:      status,
		StatusName:    status.String(),
		Title:         RequestTitle,
		ContactName:   "Huda",
		City:          "Riyadh",
		CreatedDate:   &CreatedDate,
	}
}

func requestItems(nb int, status request.Status) []request.ServiceRequest {
	items := make([]request.ServiceRequest, 0, nb)
	for i := 0; i < nb; i++ {
		item := ServiceRequestFixture(status)
		item.RequestID = RequestID + i
		item.RequestNumber = fmt.Sprintf("ORD-2024-%04d", i+1)
		items = append(items, item)
	}
	return items
}

// MustRequestGetResponder responds with a single record in the given status.
func MustRequestGetResponder(status request.Status) httpmock.Responder {
	responder, err := httpmock.NewJsonResponder(http.StatusOK, ServiceRequestFixture(status))
	if err != nil {
		panic(err)
	}
	return responder
}

// MustWrappedRequestGetResponder wraps the record in a {"data": ...} envelope.
func MustWrappedRequestGetResponder(status request.Status) httpmock.Responder {
	responder, err := httpmock.NewJsonResponder(http.StatusOK, map[string]interface{}{
		"data": ServiceRequestFixture(status),
	})
	if err != nil {
		panic(err)
	}
	return responder
}

// MustPageResponder responds with the paginated {data, totalCount, totalPages}
// envelope.
func MustPageResponder(nb int, status request.Status, totalCount, totalPages int) httpmock.Responder {
	responder, err := httpmock.NewJsonResponder(http.StatusOK, map[string]interface{}{
		"data":       requestItems(nb, status),
		"totalCount": totalCount,
		"totalPages": totalPages,
	})
	if err != nil {
		panic(err)
	}
	return responder
}

// MustBareListResponder responds with a bare array, the shape some endpoints
// use instead of the paginated envelope.
func MustBareListResponder(nb int, status request.Status) httpmock.Responder {
	responder, err := httpmock.NewJsonResponder(http.StatusOK, requestItems(nb, status))
	if err != nil {
		panic(err)
	}
	return responder
}

// MustErrorResponder responds with the given code and a {"message": ...} body.
func MustErrorResponder(code int, message string) httpmock.Responder {
	responder, err := httpmock.NewJsonResponder(code, map[string]string{"message": message})
	if err != nil {
		panic(err)
	}
	return responder
}

// UpdateStatusResponder validates the transition payload and echoes the
// applied status. Rejections without a reason are refused the way the backend
// refuses them.
var UpdateStatusResponder = func(r *http.Request) (*http.Response, error) {
	if r.Method != "POST" {
		return httpmock.NewStringResponse(http.StatusMethodNotAllowed, ""), nil
	}

	var update store.UpdateStatusRequest
	err := json.NewDecoder(r.Body).Decode(&update)
	if err != nil {
		return nil, fmt.Errorf("error decoding request body: %v", err)
	}
	defer r.Body.Close()

	if update.RequestID == 0 {
		return nil, fmt.Errorf("requestId is missing")
	}

	switch update.NewStatusID {
	case request.StatusApproved, request.StatusPublished:
		// no extra payload required
	case request.StatusRejected:
		if update.Reason == "" {
			return nil, fmt.Errorf("reason is empty")
		}
	default:
		return nil, fmt.Errorf("invalid status: %v", update.NewStatusID)
	}

	return httpmock.NewJsonResponse(http.StatusOK, store.UpdateStatusResponse{
		RequestID:  update.RequestID,
		StatusID:   update.NewStatusID,
		StatusName: update.NewStatusID.String(),
	})
}

// MismatchedUpdateResponder acknowledges the call but reports a different
// final status than the one requested.
var MismatchedUpdateResponder = func(r *http.Request) (*http.Response, error) {
	var update store.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		return nil, fmt.Errorf("error decoding request body: %v", err)
	}
	defer r.Body.Close()

	return httpmock.NewJsonResponse(http.StatusOK, store.UpdateStatusResponse{
		RequestID: update.RequestID,
		StatusID:  request.StatusPending,
	})
}
