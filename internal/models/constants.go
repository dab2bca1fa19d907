package models

// DefaultScaffold is offered in add mode when a dataset has no records yet
func DefaultScaffold() []ScaffoldCategory {
	return []ScaffoldCategory{
		{Category: "gender", Values: []string{"men", "women", "others"}},
	}
}
