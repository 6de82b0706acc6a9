package model

// PrometheusRequest carries a PromQL query and the connection details of the
// Prometheus API. An empty URL lets the executor discover the in-cluster
// service. Basic auth takes precedence over the bearer token.
type PrometheusRequest struct {
	Query    string `json:"query"`
	URL      string `json:"prometheusUrl" validate:"omitempty,url"`
	User     string `json:"prometheusUser"`
	Password string `json:"prometheusPass"`
	Token    string `json:"prometheusToken"`
}

// PrometheusChartRequest stores a named query for a controller.
type PrometheusChartRequest struct {
	Query      string `json:"query" validate:"required"`
	QueryName  string `json:"queryName" validate:"required"`
	Namespace  string `json:"namespace" validate:"required,dns1123label"`
	Controller string `json:"controller" validate:"required"`
}

type PrometheusChartRefRequest struct {
	QueryName  string `json:"queryName" validate:"required"`
	Namespace  string `json:"namespace" validate:"required,dns1123label"`
	Controller string `json:"controller" validate:"required"`
}

type PrometheusChartListRequest struct {
	Namespace  string `json:"namespace" validate:"required,dns1123label"`
	Controller string `json:"controller" validate:"required"`
}

type PrometheusSample struct {
	Metric map[string]string `json:"metric"`
	Value  []any             `json:"value"`
}

type PrometheusQueryData struct {
	ResultType string             `json:"resultType"`
	Result     []PrometheusSample `json:"result"`
}

type PrometheusQueryResponse struct {
	Status    string              `json:"status"`
	Data      PrometheusQueryData `json:"data"`
	ErrorType string              `json:"errorType,omitempty"`
	Error     string              `json:"error,omitempty"`
}
