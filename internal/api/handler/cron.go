package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/deepcalm/campaign-console/internal/scheduler"
	"github.com/deepcalm/campaign-console/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDashboardRefresh = scheduler.JobDashboardRefresh
	CronJobTypeIntegrationsSync = scheduler.JobIntegrationsSync
	CronJobTypeAll              = "all"
)

// CronJob é o contrato comum dos agendadores acionáveis manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DashboardRefreshService CronJob
	IntegrationsSyncService CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := make(map[string]CronJob, 2)
	if s.DashboardRefreshService != nil {
		jobs[CronJobTypeDashboardRefresh] = s.DashboardRefreshService
	}
	if s.IntegrationsSyncService != nil {
		jobs[CronJobTypeIntegrationsSync] = s.IntegrationsSyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := strings.ToLower(httprouter.ParamsFromContext(r.Context()).ByName("type"))
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.byType()

		switch cronType {
		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}

		case CronJobTypeDashboardRefresh, CronJobTypeIntegrationsSync:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "Serviço de cron não disponível: "+cronType, nil)
				return
			}
			job.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dashboard-refresh, integrations-sync, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := make(map[string]any)
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
