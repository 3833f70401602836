package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application. Each instance
// owns its registry, so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	AccountsRegistered   prometheus.Counter
	Logins               *prometheus.CounterVec
	CompaniesCreated     prometheus.Counter
	CompaniesReactivated prometheus.Counter
	Lookups              *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		AccountsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "localize_accounts_registered_total",
			Help: "Total number of accounts created",
		}),
		Logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "localize_logins_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
		CompaniesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "localize_companies_created_total",
			Help: "Total number of companies created",
		}),
		CompaniesReactivated: factory.NewCounter(prometheus.CounterOpts{
			Name: "localize_companies_reactivated_total",
			Help: "Total number of inactive companies revived by a new registration",
		}),
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "localize_cnpj_lookups_total",
			Help: "CNPJ registry lookups by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) IncrementAccountsRegistered() {
	m.AccountsRegistered.Inc()
}

func (m *Metrics) ObserveLogin(outcome string) {
	m.Logins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementCompaniesCreated() {
	m.CompaniesCreated.Inc()
}

func (m *Metrics) IncrementCompaniesReactivated() {
	m.CompaniesReactivated.Inc()
}

func (m *Metrics) ObserveLookup(outcome string) {
	m.Lookups.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
