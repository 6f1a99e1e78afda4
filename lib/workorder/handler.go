package workorderhandler

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"labo-isometeer-backend/config"
	"labo-isometeer-backend/db"
	clientstore "labo-isometeer-backend/lib/client/store"
	pdfexport "labo-isometeer-backend/lib/export/pdf"
	filestorage "labo-isometeer-backend/lib/file-storage"
	"labo-isometeer-backend/lib/smtp"
	usersstore "labo-isometeer-backend/lib/users/store"
	"labo-isometeer-backend/lib/workload"
	workorderstore "labo-isometeer-backend/lib/workorder/store"
	connectionhub "labo-isometeer-backend/lib/ws/hub/connection-hub"
	"labo-isometeer-backend/models"
	otapimodels "labo-isometeer-backend/models/api/workorder"
	dbmodels "labo-isometeer-backend/models/db"
	wsmodels "labo-isometeer-backend/models/ws"
)

type Provider interface {
	Create(request otapimodels.WorkOrderData) (id string, err error)
	GetByID(id string) (view otapimodels.WorkOrderView, err error)
	List(filter otapimodels.WorkOrderFilter) (list []otapimodels.WorkOrderView, rowCount int64, err error)
	Update(id string, request otapimodels.WorkOrderUpdate) error
	Authorize(id string) error
	Cancel(id string) error
	Delete(id string) error
	AddActivity(workOrderID string, request otapimodels.ActivityData) (id string, err error)
	DeleteActivity(workOrderID, activityID string) error
	ChangeActivityState(workOrderID, activityID string, request otapimodels.ActivityStateRequest) error
	Assign(workOrderID, activityID string, request otapimodels.AssignRequest) error
	AttachContract(ctx context.Context, id string, fileName string, file []byte, contentType string) error
	GetContract(ctx context.Context, id string) (fileName string, file []byte, err error)
	GetPDF(id string) (fileName string, file []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       workorderstore.NewInstance(db.DB),
		clientStore: clientstore.NewInstance(db.DB),
		usersStore:  usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store       workorderstore.Provider
	clientStore clientstore.Provider
	usersStore  usersstore.Provider
}

// keyRetries cubre la carrera entre dos OT creadas el mismo día para
// el mismo tipo: ante choque de clave se reintenta con la secuencia
// siguiente.
const keyRetries = 3

const maxContractSize = 20 * 1024 * 1024

func (i impl) Create(request otapimodels.WorkOrderData) (id string, err error) {
	logger := log.WithField("client_id", request.ClientID)
	client, err := i.clientStore.GetByID(request.ClientID)
	if err != nil {
		logger.WithError(err).Error("error buscando el cliente de la OT")
		return "", err
	}
	if client == nil {
		return "", errors.New("cliente no encontrado")
	}
	date, err := request.ParseDate()
	if err != nil {
		return "", err
	}
	otType := models.OTType(request.Type)

	rec := dbmodels.WorkOrder{
		Date:     date,
		Type:     otType,
		ClientID: client.ID,
		Title:    request.Title,
		Auth:     models.AuthPending,
	}
	for _, act := range request.Activities {
		assignees, aErr := i.usersStore.GetByIDs(act.AssigneeIDs)
		if aErr != nil {
			return "", aErr
		}
		rec.Activities = append(rec.Activities, dbmodels.Activity{
			Type:      act.Type,
			State:     act.CanonicalState(),
			Assignees: assignees,
		})
	}

	seq, err := i.store.CountByDayAndType(date, otType)
	if err != nil {
		logger.WithError(err).Error("error calculando la secuencia del día")
		return "", err
	}
	for attempt := 0; attempt < keyRetries; attempt++ {
		rec.OTKey = GenerateOTKey(date, otType, client.Code, int(seq)+1+attempt)
		id, err = i.store.Create(rec)
		if err == nil {
			break
		}
		if !isUniqueViolation(err) {
			logger.WithError(err).Error("error creando la OT")
			return "", err
		}
	}
	if err != nil {
		logger.WithError(err).Error("no se pudo asignar una clave libre a la OT")
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("ot_key", rec.OTKey).
		Info("OT creada")
	connectionhub.Instance.Broadcast(wsmodels.CodeDashboardRefresh, rec.OTKey)
	return id, nil
}

func (i impl) GetByID(id string) (view otapimodels.WorkOrderView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error buscando la OT")
		return otapimodels.WorkOrderView{}, err
	}
	if rec == nil {
		return otapimodels.WorkOrderView{}, errors.New("OT no encontrada")
	}
	return i.toView(*rec), nil
}

func (i impl) List(filter otapimodels.WorkOrderFilter) (list []otapimodels.WorkOrderView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	if i.needsDerivedFilter(filter.Status) {
		return i.listByDerivedStatus(filter, page, limit)
	}
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.store.List(filter, page, limit)
	if err != nil {
		log.WithError(err).Error("error obteniendo la lista de OT")
		return nil, 0, err
	}
	list = make([]otapimodels.WorkOrderView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, i.toView(rec))
	}
	return list, rowCount, nil
}

func (i impl) Update(id string, request otapimodels.WorkOrderUpdate) error {
	err := i.store.Update(id, map[string]interface{}{
		"title": request.Title,
	})
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error actualizando la OT")
		return err
	}
	return nil
}

func (i impl) Authorize(id string) error {
	return i.setAuth(id, models.AuthAuthorized, "OT autorizada")
}

func (i impl) Cancel(id string) error {
	return i.setAuth(id, models.AuthCancelled, "OT anulada")
}

func (i impl) setAuth(id string, auth models.AuthState, logMsg string) error {
	err := i.store.Update(id, map[string]interface{}{
		"auth": auth,
	})
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error cambiando la autorización de la OT")
		return err
	}
	log.WithField("rec_id", id).Info(logMsg)
	connectionhub.Instance.Broadcast(wsmodels.CodeDashboardRefresh, "")
	return nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("OT no encontrada")
	}
	if rec.ContractFile != "" {
		err = filestorage.Instance.DeleteContract(context.Background(), id)
		if err != nil {
			log.
				WithField("rec_id", id).
				WithError(err).
				Warn("no se pudo borrar el contrato de la OT")
		}
	}
	err = i.store.Delete(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error eliminando la OT")
		return err
	}
	log.WithField("rec_id", id).Info("OT eliminada")
	connectionhub.Instance.Broadcast(wsmodels.CodeDashboardRefresh, "")
	return nil
}

func (i impl) AddActivity(workOrderID string, request otapimodels.ActivityData) (id string, err error) {
	rec, err := i.store.GetByID(workOrderID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.New("OT no encontrada")
	}
	assignees, err := i.usersStore.GetByIDs(request.AssigneeIDs)
	if err != nil {
		return "", err
	}
	act := dbmodels.Activity{
		WorkOrderID: workOrderID,
		Type:        request.Type,
		State:       request.CanonicalState(),
		Assignees:   assignees,
	}
	id, err = i.store.AddActivity(act)
	if err != nil {
		log.
			WithField("rec_id", workOrderID).
			WithError(err).
			Error("error agregando la actividad")
		return "", err
	}
	if len(assignees) > 0 {
		act.BaseModel.ID = id
		i.notifyAssignees(*rec, act, assignees)
	}
	connectionhub.Instance.Broadcast(wsmodels.CodeDashboardRefresh, rec.OTKey)
	return id, nil
}

func (i impl) DeleteActivity(workOrderID, activityID string) error {
	err := i.store.DeleteActivity(workOrderID, activityID)
	if err != nil {
		log.
			WithField("activity_id", activityID).
			WithError(err).
			Error("error eliminando la actividad")
		return err
	}
	connectionhub.Instance.Broadcast(wsmodels.CodeDashboardRefresh, "")
	return nil
}

func (i impl) ChangeActivityState(workOrderID, activityID string, request otapimodels.ActivityStateRequest) error {
	act, err := i.store.GetActivity(workOrderID, activityID)
	if err != nil {
		return err
	}
	if act == nil {
		return errors.New("actividad no encontrada")
	}
	newState, _ := models.ParseActivityState(request.State)
	if !act.State.CanTransition(newState) {
		return errors.Errorf("la actividad no puede pasar de %s a %s", act.State.ToHuman(), newState.ToHuman())
	}
	err = i.store.UpdateActivityState(activityID, newState)
	if err != nil {
		log.
			WithField("activity_id", activityID).
			WithError(err).
			Error("error cambiando el estado de la actividad")
		return err
	}
	log.
		WithField("activity_id", activityID).
		WithField("state", newState).
		Info("estado de actividad actualizado")
	connectionhub.Instance.Broadcast(wsmodels.CodeDashboardRefresh, "")
	return nil
}

func (i impl) Assign(workOrderID, activityID string, request otapimodels.AssignRequest) error {
	rec, err := i.store.GetByID(workOrderID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("OT no encontrada")
	}
	act, err := i.store.GetActivity(workOrderID, activityID)
	if err != nil {
		return err
	}
	if act == nil {
		return errors.New("actividad no encontrada")
	}
	assignees, err := i.usersStore.GetByIDs(request.AssigneeIDs)
	if err != nil {
		return err
	}
	if len(assignees) != len(request.AssigneeIDs) {
		return errors.New("hay usuarios inexistentes en la asignación")
	}
	err = i.store.SetAssignees(activityID, assignees)
	if err != nil {
		log.
			WithField("activity_id", activityID).
			WithError(err).
			Error("error asignando la actividad")
		return err
	}
	newOnes := newAssignees(act.Assignees, assignees)
	if len(newOnes) > 0 {
		i.notifyAssignees(*rec, *act, newOnes)
	}
	connectionhub.Instance.Broadcast(wsmodels.CodeDashboardRefresh, rec.OTKey)
	return nil
}

func (i impl) AttachContract(ctx context.Context, id string, fileName string, file []byte, contentType string) error {
	if !strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return errors.New("el contrato debe ser un archivo PDF")
	}
	if len(file) == 0 {
		return errors.New("el archivo del contrato está vacío")
	}
	if len(file) > maxContractSize {
		return errors.New("el archivo del contrato supera el tamaño máximo permitido")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("OT no encontrada")
	}
	err = filestorage.Instance.UploadContract(ctx, id, bytes.NewReader(file), int64(len(file)), contentType)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error subiendo el contrato")
		return err
	}
	err = i.store.Update(id, map[string]interface{}{
		"contract_file": fileName,
	})
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		WithField("file_name", fileName).
		Info("contrato adjuntado a la OT")
	return nil
}

func (i impl) GetContract(ctx context.Context, id string) (fileName string, file []byte, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, errors.New("OT no encontrada")
	}
	if rec.ContractFile == "" {
		return "", nil, errors.New("la OT no tiene contrato adjunto")
	}
	file, err = filestorage.Instance.GetContract(ctx, id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error descargando el contrato")
		return "", nil, err
	}
	return rec.ContractFile, file, nil
}

func (i impl) GetPDF(id string) (fileName string, file []byte, err error) {
	view, err := i.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	file, err = pdfexport.GenerateWorkOrderPDF(view)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("error generando el PDF de la OT")
		return "", nil, err
	}
	return "ot-" + view.OTKey + ".pdf", file, nil
}

// listByDerivedStatus resuelve los filtros que dependen de la etiqueta
// calculada (sin asignar, en espera, en proceso, terminadas): se traen
// las OT que pasan los filtros de base y se pagina sobre el resultado
// clasificado.
func (i impl) listByDerivedStatus(filter otapimodels.WorkOrderFilter, page, limit int) (list []otapimodels.WorkOrderView, rowCount int64, err error) {
	wanted := models.OTStatus(filter.Status)
	baseFilter := filter
	baseFilter.Status = ""
	recs, err := i.store.List(baseFilter, 1, listAllLimit)
	if err != nil {
		return nil, 0, err
	}
	matched := make([]otapimodels.WorkOrderView, 0, len(recs))
	for _, rec := range recs {
		view := i.toView(rec)
		if view.Status == string(wanted) {
			matched = append(matched, view)
		}
	}
	rowCount = int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return []otapimodels.WorkOrderView{}, rowCount, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], rowCount, nil
}

const listAllLimit = 10000

func (i impl) needsDerivedFilter(status string) bool {
	switch models.OTStatus(status) {
	case models.OTStatusSinAsignar, models.OTStatusEnEspera,
		models.OTStatusEnProceso, models.OTStatusTerminadas:
		return true
	}
	return false
}

func (i impl) toView(rec dbmodels.WorkOrder) otapimodels.WorkOrderView {
	order := workload.FromWorkOrders([]dbmodels.WorkOrder{rec})[0]
	status := workload.Classify(order)
	view := otapimodels.WorkOrderView{
		ID:          rec.ID,
		OTKey:       rec.OTKey,
		Date:        rec.Date.Format(otapimodels.DateLayout),
		Type:        string(rec.Type),
		TypeName:    rec.Type.ToHuman(),
		ClientID:    rec.ClientID,
		Title:       rec.Title,
		Auth:        int(rec.Auth),
		Authorized:  rec.Auth == models.AuthAuthorized,
		Status:      string(status),
		StatusName:  status.ToHuman(),
		HasContract: rec.ContractFile != "",
	}
	if rec.Client != nil {
		view.ClientName = rec.Client.Name
	}
	view.Activities = make([]otapimodels.ActivityView, 0, len(rec.Activities))
	for _, act := range rec.Activities {
		view.Activities = append(view.Activities, otapimodels.ActivityView{
			ID:        act.ID,
			Type:      act.Type,
			State:     string(act.State),
			StateName: act.State.ToHuman(),
			Assignees: act.AssigneeNames(),
		})
	}
	return view
}

func (i impl) notifyAssignees(rec dbmodels.WorkOrder, act dbmodels.Activity, users []dbmodels.User) {
	for _, user := range users {
		msg := "Se te asignó la actividad \"" + act.Type + "\" de la OT " + rec.OTKey
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID: user.ID,
			Time:     time.Now().Format("02.01.2006 15:04:05"),
			Code:     wsmodels.CodeActivityAssigned,
			Msg:      msg,
		})
		err := smtp.Instance.SendEMail(config.Conf.Smtp.From, user.Email, msg, "Nueva asignación")
		if err != nil {
			log.
				WithField("user_id", user.ID).
				WithError(err).
				Warn("no se pudo avisar por correo la asignación")
		}
	}
}

func newAssignees(before, after []dbmodels.User) []dbmodels.User {
	known := make(map[string]struct{}, len(before))
	for _, u := range before {
		known[u.ID] = struct{}{}
	}
	added := []dbmodels.User{}
	for _, u := range after {
		if _, exist := known[u.ID]; !exist {
			added = append(added, u)
		}
	}
	return added
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint")
}
