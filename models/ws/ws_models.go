package wsmodels

const (
	CodeDashboardRefresh = "dashboard_refresh"
	CodeActivityAssigned = "activity_assigned"
)

type ServerMessage struct {
	ToUserID string `json:"-"`
	Time     string `json:"time"` // hora del evento
	Code     string `json:"code"` // código del evento
	Msg      string `json:"msg"`  // texto del evento
}
