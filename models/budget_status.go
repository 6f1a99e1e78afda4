package models

type BudgetStatus string

const (
	BudgetStatusPendiente BudgetStatus = "pendiente"
	BudgetStatusAprobado  BudgetStatus = "aprobado"
	BudgetStatusRechazado BudgetStatus = "rechazado"
)

var budgetStatusHumanName = map[BudgetStatus]string{
	BudgetStatusPendiente: "Pendiente",
	BudgetStatusAprobado:  "Aprobado",
	BudgetStatusRechazado: "Rechazado",
}

func (s BudgetStatus) ToHuman() string {
	if human, exist := budgetStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s BudgetStatus) IsValid() bool {
	_, exist := budgetStatusHumanName[s]
	return exist
}
