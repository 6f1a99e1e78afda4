package otapimodels

import (
	"time"

	"github.com/pkg/errors"

	"labo-isometeer-backend/models"
	apimodels "labo-isometeer-backend/models/api"
)

const DateLayout = "2006-01-02"

type ActivityData struct {
	Type string `json:"type"`
	// acepta el vocabulario canónico (pendiente/en_progreso/finalizada)
	// y el heredado (CREATED/STARTED/END); vacío equivale a pendiente
	State       string   `json:"state"`
	AssigneeIDs []string `json:"assignee_ids"`
}

func (r ActivityData) Validate() error {
	if r.Type == "" {
		return errors.New("la actividad necesita un tipo")
	}
	if r.State != "" {
		if _, ok := models.ParseActivityState(r.State); !ok {
			return errors.Errorf("estado de actividad desconocido: %s", r.State)
		}
	}
	return nil
}

// CanonicalState colapsa ambos vocabularios al enum canónico.
func (r ActivityData) CanonicalState() models.ActivityState {
	if r.State == "" {
		return models.ActivityStatePendiente
	}
	state, ok := models.ParseActivityState(r.State)
	if !ok {
		return models.ActivityStatePendiente
	}
	return state
}

type WorkOrderData struct {
	Date       string         `json:"date"`
	Type       string         `json:"type"`
	ClientID   string         `json:"client_id"`
	Title      string         `json:"title"`
	Activities []ActivityData `json:"activities"`
}

func (r WorkOrderData) Validate() error {
	if _, err := r.ParseDate(); err != nil {
		return errors.New("la fecha debe tener formato AAAA-MM-DD")
	}
	if !models.OTType(r.Type).IsValid() {
		return errors.Errorf("tipo de OT desconocido: %s", r.Type)
	}
	if r.ClientID == "" {
		return errors.New("la OT necesita un cliente")
	}
	for _, act := range r.Activities {
		if err := act.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r WorkOrderData) ParseDate() (time.Time, error) {
	return time.Parse(DateLayout, r.Date)
}

// WorkOrderUpdate sólo toca campos que no participan de la clave:
// la fecha, el tipo y el cliente quedan fijos desde la creación.
type WorkOrderUpdate struct {
	Title string `json:"title"`
}

func (r WorkOrderUpdate) Validate() error {
	if r.Title == "" {
		return errors.New("el título no puede quedar vacío")
	}
	return nil
}

type ActivityView struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	State     string   `json:"state"`
	StateName string   `json:"state_name"`
	Assignees []string `json:"assignees"`
}

type WorkOrderView struct {
	ID          string         `json:"id"`
	OTKey       string         `json:"ot_key"`
	Date        string         `json:"date"`
	Type        string         `json:"type"`
	TypeName    string         `json:"type_name"`
	ClientID    string         `json:"client_id"`
	ClientName  string         `json:"client_name"`
	Title       string         `json:"title"`
	Auth        int            `json:"auth"`
	Authorized  bool           `json:"authorized"`
	Status      string         `json:"status"`
	StatusName  string         `json:"status_name"`
	HasContract bool           `json:"has_contract"`
	Activities  []ActivityView `json:"activities"`
}

type WorkOrderFilter struct {
	apimodels.Pagination
	Status   string `json:"status"`
	ClientID string `json:"client_id"`
	Type     string `json:"type"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

func (r WorkOrderFilter) Validate() error {
	if r.DateFrom != "" {
		if _, err := time.Parse(DateLayout, r.DateFrom); err != nil {
			return errors.New("date_from debe tener formato AAAA-MM-DD")
		}
	}
	if r.DateTo != "" {
		if _, err := time.Parse(DateLayout, r.DateTo); err != nil {
			return errors.New("date_to debe tener formato AAAA-MM-DD")
		}
	}
	if r.Type != "" && !models.OTType(r.Type).IsValid() {
		return errors.Errorf("tipo de OT desconocido: %s", r.Type)
	}
	return nil
}

type AssignRequest struct {
	AssigneeIDs []string `json:"assignee_ids"`
}

func (r AssignRequest) Validate() error {
	return nil
}

type ActivityStateRequest struct {
	State string `json:"state"`
}

func (r ActivityStateRequest) Validate() error {
	if _, ok := models.ParseActivityState(r.State); !ok {
		return errors.Errorf("estado de actividad desconocido: %s", r.State)
	}
	return nil
}
