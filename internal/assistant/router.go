package assistant

import "strings"

// Router выбирает ответ по упорядоченной таблице правил.
// Выбор детерминирован и не имеет состояния: одинаковый вход
// всегда даёт одинаковый ответ.
type Router struct {
	rules []Rule
}

// NewRouter создаёт Router с таблицей правил по умолчанию
func NewRouter() *Router {
	return &Router{rules: Rules()}
}

// NewRouterWithRules создаёт Router с заданной таблицей правил
func NewRouterWithRules(rules []Rule) *Router {
	return &Router{rules: rules}
}

// Match возвращает первое совпавшее правило в порядке таблицы,
// nil если не совпало ни одно
func (r *Router) Match(input string) *Rule {
	lowered := strings.ToLower(input)
	for i := range r.rules {
		if matches(&r.rules[i], lowered) {
			return &r.rules[i]
		}
	}
	return nil
}

// Reply возвращает ответ на пользовательский ввод. Любой вход,
// включая пустой, даёт непустой ответ: при отсутствии совпадений
// возвращается сводка возможностей.
func (r *Router) Reply(input string) string {
	if rule := r.Match(input); rule != nil {
		return rule.Respond()
	}
	return fallbackResponse
}

func matches(rule *Rule, lowered string) bool {
	for _, kw := range rule.AllOf {
		if !strings.Contains(lowered, kw) {
			return false
		}
	}
	if len(rule.AnyOf) == 0 {
		return len(rule.AllOf) > 0
	}
	for _, kw := range rule.AnyOf {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
