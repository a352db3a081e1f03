package assistant

// Rule - одно правило маршрутизации: условие срабатывания и построитель ответа.
// Вход считается совпавшим, если содержит ВСЕ подстроки AllOf
// и хотя бы одну из AnyOf (пустой AnyOf пропускает проверку).
type Rule struct {
	Name    string
	AllOf   []string
	AnyOf   []string
	Respond func() string
}

// defaultRules - упорядоченная таблица правил. Порядок значим: более
// специфичные правила с несколькими ключевыми словами стоят раньше
// широких одиночных, чтобы их не перекрывало.
var defaultRules = []Rule{
	{
		Name:    "pollution-level",
		AllOf:   []string{"pollution", "level"},
		Respond: func() string { return pollutionLevelResponse },
	},
	{
		Name:    "complaint-email",
		AnyOf:   []string{"complaint", "email"},
		Respond: func() string { return complaintResponse },
	},
	{
		Name:    "safety",
		AnyOf:   []string{"safety", "protection"},
		Respond: func() string { return safetyResponse },
	},
	{
		Name:    "metrics",
		AnyOf:   []string{"metric", "read"},
		Respond: func() string { return metricsResponse },
	},
	{
		Name:    "reporting",
		AnyOf:   []string{"report", "submit"},
		Respond: func() string { return reportingResponse },
	},
	{
		Name:    "prediction",
		AnyOf:   []string{"predict", "forecast"},
		Respond: func() string { return predictionResponse },
	},
}

// Rules возвращает таблицу правил по умолчанию. Таблица неизменяемая,
// вызывающие не должны её модифицировать.
func Rules() []Rule {
	return defaultRules
}
