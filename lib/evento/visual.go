package evento

import "talentos-backend/models"

// Visual define o ícone e a cor exibidos para cada tipo de evento.
type Visual struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var visuals = map[models.EventType]Visual{
	models.EventTypeStageChange: {Icon: "arrow-right", Color: "#60A5FA"},
	models.EventTypeCreated:     {Icon: "plus", Color: "#22C55E"},
	models.EventTypeUpdated:     {Icon: "pencil", Color: "#FBBF24"},
	models.EventTypeComment:     {Icon: "chat", Color: "#A78BFA"},
	models.EventTypeLinked:      {Icon: "link", Color: "#34D399"},
	models.EventTypeUnlinked:    {Icon: "link-off", Color: "#F97316"},
	models.EventTypeApplication: {Icon: "user-plus", Color: "#22C55E"},
	models.EventTypeStaleAlert:  {Icon: "alert", Color: "#EF4444"},
	models.EventTypeInterview:   {Icon: "calendar", Color: "#60A5FA"},
	models.EventTypeArchived:    {Icon: "archive", Color: "#94A3B8"},
}

var defaultVisual = Visual{Icon: "dot", Color: "#94A3B8"}

func GetVisual(eventType models.EventType) Visual {
	if v, ok := visuals[eventType]; ok {
		return v
	}
	return defaultVisual
}
