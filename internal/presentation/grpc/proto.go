package grpc

// proto.go defines the gRPC server interface derived from
// affordability/v1/affordability.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/firsthome/affordability-service/api/gen/go/affordability/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// CalculateRequest mirrors affordability.v1.CalculateRequest. Monetary inputs
// are plain floats; monetary outputs come back as decimal strings.
type CalculateRequest struct {
	TenantID           string  `json:"tenant_id"`
	AnnualIncome       float64 `json:"annual_income"`
	MonthlyDebts       float64 `json:"monthly_debts"`
	FICOScore          int     `json:"fico_score"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	TermYears          int     `json:"term_years"`
	InterestRate       float64 `json:"interest_rate"`
	LoanAmount         float64 `json:"loan_amount"`
	MonthlyPropertyTax float64 `json:"monthly_property_tax"`
	MonthlyInsurance   float64 `json:"monthly_insurance"`

	UseAUS              bool   `json:"use_aus"`
	PositiveRentHistory bool   `json:"positive_rent_history"`
	Region              string `json:"region"`

	MonthlyTaxWithholding float64 `json:"monthly_tax_withholding"`
	ChildcareExpenses     float64 `json:"childcare_expenses"`

	NecessaryMonthlyDebts float64 `json:"necessary_monthly_debts"`
	CashReserves          float64 `json:"cash_reserves"`
	CurrentHousingPayment float64 `json:"current_housing_payment"`
	HouseholdSize         int     `json:"household_size"`
}

// CalculateResponse mirrors affordability.v1.CalculateResponse.
type CalculateResponse struct {
	MaxLoanAmount     string `json:"max_loan_amount"`
	MaxHomePrice      string `json:"max_home_price"`
	DownPaymentAmount string `json:"down_payment_amount"`

	PrincipalAndInterest string `json:"principal_and_interest"`
	PropertyTax          string `json:"property_tax"`
	Insurance            string `json:"insurance"`
	MonthlyMIP           string `json:"monthly_mip"`
	TotalMonthlyPayment  string `json:"total_monthly_payment"`
	UpfrontMIP           string `json:"upfront_mip"`

	AllowedDTI    float64  `json:"allowed_dti"`
	DTIPercent    float64  `json:"dti_percent"`
	LTVPercent    float64  `json:"ltv_percent"`
	ActiveFactors []string `json:"active_factors"`

	MeetsMinimumRequirements bool     `json:"meets_minimum_requirements"`
	Converged                bool     `json:"converged"`
	Iterations               int      `json:"iterations"`
	Warnings                 []string `json:"warnings"`

	AppliedRate               float64 `json:"applied_rate"`
	EstimatedMonthlyTax       string  `json:"estimated_monthly_tax"`
	EstimatedMonthlyInsurance string  `json:"estimated_monthly_insurance"`
}

// Scenario mirrors affordability.v1.Scenario.
type Scenario struct {
	ID            string `json:"id"`
	TenantID      string `json:"tenant_id"`
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	MaxLoanAmount string `json:"max_loan_amount"`
	MaxHomePrice  string `json:"max_home_price"`
	AllowedDTI    float64 `json:"allowed_dti"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// SaveScenarioRequest mirrors affordability.v1.SaveScenarioRequest.
type SaveScenarioRequest struct {
	Calculation *CalculateRequest `json:"calculation"`
	UserID      string            `json:"user_id"`
	Name        string            `json:"name"`
}

// SaveScenarioResponse mirrors affordability.v1.SaveScenarioResponse.
type SaveScenarioResponse struct {
	Scenario *Scenario `json:"scenario"`
}

// GetScenarioRequest mirrors affordability.v1.GetScenarioRequest.
type GetScenarioRequest struct {
	TenantID   string `json:"tenant_id"`
	ScenarioID string `json:"scenario_id"`
}

// GetScenarioResponse mirrors affordability.v1.GetScenarioResponse.
type GetScenarioResponse struct {
	Scenario *Scenario `json:"scenario"`
}

// ListScenariosRequest mirrors affordability.v1.ListScenariosRequest.
type ListScenariosRequest struct {
	TenantID string `json:"tenant_id"`
	UserID   string `json:"user_id"`
}

// ListScenariosResponse mirrors affordability.v1.ListScenariosResponse.
type ListScenariosResponse struct {
	Scenarios []*Scenario `json:"scenarios"`
}

// DeleteScenarioRequest mirrors affordability.v1.DeleteScenarioRequest.
type DeleteScenarioRequest struct {
	TenantID   string `json:"tenant_id"`
	ScenarioID string `json:"scenario_id"`
}

// DeleteScenarioResponse mirrors affordability.v1.DeleteScenarioResponse.
type DeleteScenarioResponse struct {
	Deleted bool `json:"deleted"`
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// AffordabilityServiceServer is the server API for AffordabilityService.
// It mirrors the proto-generated interface from affordability.v1.AffordabilityService.
type AffordabilityServiceServer interface {
	Calculate(context.Context, *CalculateRequest) (*CalculateResponse, error)
	SaveScenario(context.Context, *SaveScenarioRequest) (*SaveScenarioResponse, error)
	GetScenario(context.Context, *GetScenarioRequest) (*GetScenarioResponse, error)
	ListScenarios(context.Context, *ListScenariosRequest) (*ListScenariosResponse, error)
	DeleteScenario(context.Context, *DeleteScenarioRequest) (*DeleteScenarioResponse, error)
	mustEmbedUnimplementedAffordabilityServiceServer()
}

// UnimplementedAffordabilityServiceServer provides forward-compatible default implementations.
type UnimplementedAffordabilityServiceServer struct{}

func (UnimplementedAffordabilityServiceServer) Calculate(context.Context, *CalculateRequest) (*CalculateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Calculate not implemented")
}
func (UnimplementedAffordabilityServiceServer) SaveScenario(context.Context, *SaveScenarioRequest) (*SaveScenarioResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveScenario not implemented")
}
func (UnimplementedAffordabilityServiceServer) GetScenario(context.Context, *GetScenarioRequest) (*GetScenarioResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetScenario not implemented")
}
func (UnimplementedAffordabilityServiceServer) ListScenarios(context.Context, *ListScenariosRequest) (*ListScenariosResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListScenarios not implemented")
}
func (UnimplementedAffordabilityServiceServer) DeleteScenario(context.Context, *DeleteScenarioRequest) (*DeleteScenarioResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteScenario not implemented")
}
func (UnimplementedAffordabilityServiceServer) mustEmbedUnimplementedAffordabilityServiceServer() {}

// RegisterAffordabilityServiceServer registers the AffordabilityServiceServer with the gRPC server.
func RegisterAffordabilityServiceServer(s *grpclib.Server, srv AffordabilityServiceServer) {
	s.RegisterService(&_AffordabilityService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _AffordabilityService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "affordability.v1.AffordabilityService",
	HandlerType: (*AffordabilityServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Calculate", Handler: _AffordabilityService_Calculate_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "SaveScenario", Handler: _AffordabilityService_SaveScenario_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "GetScenario", Handler: _AffordabilityService_GetScenario_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "ListScenarios", Handler: _AffordabilityService_ListScenarios_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "DeleteScenario", Handler: _AffordabilityService_DeleteScenario_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _AffordabilityService_Calculate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AffordabilityServiceServer).Calculate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/affordability.v1.AffordabilityService/Calculate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AffordabilityServiceServer).Calculate(ctx, req.(*CalculateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _AffordabilityService_SaveScenario_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveScenarioRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AffordabilityServiceServer).SaveScenario(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/affordability.v1.AffordabilityService/SaveScenario",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AffordabilityServiceServer).SaveScenario(ctx, req.(*SaveScenarioRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _AffordabilityService_GetScenario_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetScenarioRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AffordabilityServiceServer).GetScenario(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/affordability.v1.AffordabilityService/GetScenario",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AffordabilityServiceServer).GetScenario(ctx, req.(*GetScenarioRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _AffordabilityService_ListScenarios_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListScenariosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AffordabilityServiceServer).ListScenarios(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/affordability.v1.AffordabilityService/ListScenarios",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AffordabilityServiceServer).ListScenarios(ctx, req.(*ListScenariosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _AffordabilityService_DeleteScenario_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteScenarioRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AffordabilityServiceServer).DeleteScenario(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/affordability.v1.AffordabilityService/DeleteScenario",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AffordabilityServiceServer).DeleteScenario(ctx, req.(*DeleteScenarioRequest))
	}
	return interceptor(ctx, in, info, handler)
}
