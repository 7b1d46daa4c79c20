package models

const (
	ChoiceViewMenu   = 1
	ChoicePlaceOrder = 2
	ChoiceAddItem    = 3
	ChoiceRemoveItem = 4
	ChoiceExit       = 5

	// FinishOrdering is the menu id a customer enters to close out an order.
	FinishOrdering = 0
)
