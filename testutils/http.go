package testutils

const (
	RootUrl = "http://fakeurl:3001/api/v1/"
)

var (
	LoginUrl = RootUrl + "Account/Login"

	OrdersUrl         = RootUrl + "Order/GetAllOrders"
	OrderByIdUrl      = RootUrl + `Order/GetOrderById/\d+`
	OrderByNumberUrl  = RootUrl + `Order/GetOrderByRequestNumber/[A-Z0-9-]+`
	OrderUpdateUrl    = RootUrl + "Order/UpdateStatus"
	ClinicsUrl        = RootUrl + "ClinicService/GetAllClinicServices"
	ClinicByIdUrl     = RootUrl + `ClinicService/GetClinicServiceById/\d+`
	ClinicUpdateUrl   = RootUrl + "ClinicService/ApproveReject"
	JobsUrl           = RootUrl + "JobPosting/GetAllJobPostings"
	JobByIdUrl        = RootUrl + `JobPosting/GetJobPostingById/\d+`
	JobUpdateUrl      = RootUrl + "JobPosting/UpdateStatus"
	UniformsUrl       = RootUrl + "Uniform/GetAllUniformOrders"
	UniformUpdateUrl  = RootUrl + "Uniform/UpdateOfficeStationaryStatus"
	EquipmentListUrl  = RootUrl + "Equipment/GetAllEquipment"
	WarehousesUrl     = RootUrl + "Warehouse/GetAllWarehouses"
	RealEstateListUrl = RootUrl + "RealEstate/GetAllListings"
)
