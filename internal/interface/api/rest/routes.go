package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	RoutePersons = RouteApiV1 + "/persons"
	RoutePerson  = RoutePersons + "/:person_id"

	RouteMedications = RouteApiV1 + "/medications"
	RouteMedication  = RouteMedications + "/:medication_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
