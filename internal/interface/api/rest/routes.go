package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	RouteUsers         = RouteApiV1 + "/users"
	RouteMe            = RouteUsers + "/me"
	RouteMePlan        = RouteMe + "/plan"
	RouteMeUsage       = RouteMe + "/usage"
	RouteCurrentResume = RouteMe + "/current-resume"

	RouteFiles      = RouteApiV1 + "/files"
	RouteFileResume = RouteFiles + "/resume"
	RouteFile       = RouteFiles + "/:file_id"

	RouteAnalyses = RouteApiV1 + "/analyses"
	RouteAnalysis = RouteAnalyses + "/:analysis_id"

	RouteGenerate           = RouteApiV1 + "/generate"
	RouteCoverLetter        = RouteGenerate + "/cover-letter"
	RouteInterviewQuestions = RouteGenerate + "/interview-questions"
	RouteOptimizedResume    = RouteGenerate + "/optimized-resume"

	RouteJobs       = RouteApiV1 + "/jobs"
	RouteJobAnalyze = RouteJobs + "/analyze"
	RouteJobSearch  = RouteJobs + "/search"
	RouteJobMatch   = RouteJobs + "/match"

	RouteApplications      = RouteApiV1 + "/applications"
	RouteApplication       = RouteApplications + "/:id"
	RouteOptimizedResumes  = RouteApiV1 + "/optimized-resumes"
	RouteOptimizedResumeID = RouteOptimizedResumes + "/:id"
	RouteInterviewPreps    = RouteApiV1 + "/interview-preps"
	RouteInterviewPrep     = RouteInterviewPreps + "/:id"

	RouteBilling         = RouteApiV1 + "/billing"
	RouteBillingCheckout = RouteBilling + "/checkout"
	RouteBillingPortal   = RouteBilling + "/portal"
	RouteBillingPayments = RouteBilling + "/payments"
	RouteBillingWebhook  = RouteBilling + "/webhook"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
