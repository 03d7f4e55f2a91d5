package request

import (
	"fmt"
	"strings"
)

// Entity describes one marketplace vertical: where its endpoints live and
// which review rules apply to it. The endpoint paths are not uniform across
// the backend, so each entity carries its own templates.
type Entity struct {
	Name  string // CLI identifier, e.g. "orders"
	Title string // display title, e.g. "Orders"

	ListEndpoint   string // GET, paginated
	DetailByID     string // GET, contains {id}
	DetailByNumber string // GET, contains {requestNumber}
	UpdateEndpoint string // POST status transition

	// Publishable entities offer Approved -> Published.
	Publishable bool

	// MinReasonLen is the minimum trimmed length of a rejection reason.
	// The threshold differs per vertical.
	MinReasonLen int

	// RejectableAfterApprove keeps the Reject action available on Approved
	// records for verticals where the backend allows late rejection.
	RejectableAfterApprove bool
}

// DetailByIDPath resolves the {id} template.
func (e Entity) DetailByIDPath(id int) string {
	return strings.Replace(e.DetailByID, "{id}", fmt.Sprintf("%d", id), 1)
}

// DetailByNumberPath resolves the {requestNumber} template.
func (e Entity) DetailByNumberPath(requestNumber string) string {
	return strings.Replace(e.DetailByNumber, "{requestNumber}", requestNumber, 1)
}

var registry = []Entity{
	{
		Name:           "orders",
		Title:          "Orders",
		ListEndpoint:   "Order/GetAllOrders",
		DetailByID:     "Order/GetOrderById/{id}",
		DetailByNumber: "Order/GetOrderByRequestNumber/{requestNumber}",
		UpdateEndpoint: "Order/UpdateStatus",
		MinReasonLen:   1,
	},
	{
		Name:                   "clinics",
		Title:                  "Clinic Services",
		ListEndpoint:           "ClinicService/GetAllClinicServices",
		DetailByID:             "ClinicService/GetClinicServiceById/{id}",
		DetailByNumber:         "ClinicService/GetByRequestNumber/{requestNumber}",
		UpdateEndpoint:         "ClinicService/ApproveReject",
		MinReasonLen:           3,
		RejectableAfterApprove: true,
	},
	{
		Name:           "equipment",
		Title:          "Medical Equipment",
		ListEndpoint:   "Equipment/GetAllEquipment",
		DetailByID:     "Equipment/GetEquipmentById/{id}",
		DetailByNumber: "Equipment/GetByRequestNumber/{requestNumber}",
		UpdateEndpoint: "Equipment/UpdateStatus",
		MinReasonLen:   3,
	},
	{
		Name:           "jobs",
		Title:          "Job Postings",
		ListEndpoint:   "JobPosting/GetAllJobPostings",
		DetailByID:     "JobPosting/GetJobPostingById/{id}",
		DetailByNumber: "JobPosting/GetByRequestNumber/{requestNumber}",
		UpdateEndpoint: "JobPosting/UpdateStatus",
		Publishable:    true,
		MinReasonLen:   3,
	},
	{
		Name:           "warehouses",
		Title:          "Warehouse Rentals",
		ListEndpoint:   "Warehouse/GetAllWarehouses",
		DetailByID:     "Warehouse/GetWarehouseById/{id}",
		DetailByNumber: "Warehouse/GetByRequestNumber/{requestNumber}",
		UpdateEndpoint: "Warehouse/UpdateStatus",
		MinReasonLen:   1,
	},
	{
		Name:                   "realestate",
		Title:                  "Real Estate Listings",
		ListEndpoint:           "RealEstate/GetAllListings",
		DetailByID:             "RealEstate/GetListingById/{id}",
		DetailByNumber:         "RealEstate/GetByRequestNumber/{requestNumber}",
		UpdateEndpoint:         "RealEstate/UpdateStatus",
		Publishable:            true,
		MinReasonLen:           1,
		RejectableAfterApprove: true,
	},
	{
		Name:           "uniforms",
		Title:          "Uniform Orders",
		ListEndpoint:   "Uniform/GetAllUniformOrders",
		DetailByID:     "Uniform/GetUniformOrderById/{id}",
		DetailByNumber: "Uniform/GetByRequestNumber/{requestNumber}",
		UpdateEndpoint: "Uniform/UpdateOfficeStationaryStatus",
		MinReasonLen:   1,
	},
}

// Entities returns the registered entity descriptors in display order.
func Entities() []Entity {
	out := make([]Entity, len(registry))
	copy(out, registry)
	return out
}

// EntityNames returns the valid CLI identifiers.
func EntityNames() []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.Name)
	}
	return names
}

// EntityByName looks up an entity descriptor by its CLI identifier.
func EntityByName(name string) (Entity, error) {
	for _, e := range registry {
		if e.Name == name {
			return e, nil
		}
	}
	return Entity{}, fmt.Errorf("unknown entity: %s. Valid entities are: %s", name, strings.Join(EntityNames(), "|"))
}
