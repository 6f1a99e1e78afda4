package workload

import (
	dbmodels "labo-isometeer-backend/models/db"
)

// FromWorkOrders convierte los registros de la base a la vista
// que consumen el clasificador y el agregador.
func FromWorkOrders(recs []dbmodels.WorkOrder) []Order {
	orders := make([]Order, 0, len(recs))
	for _, rec := range recs {
		order := Order{
			ID:    rec.ID,
			OTKey: rec.OTKey,
			Auth:  rec.Auth,
		}
		for _, act := range rec.Activities {
			order.Activities = append(order.Activities, Activity{
				Type:      act.Type,
				State:     act.State,
				Assignees: act.AssigneeNames(),
			})
		}
		orders = append(orders, order)
	}
	return orders
}
