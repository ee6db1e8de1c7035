package appointments

import (
	"context"
	"fmt"
	"strings"

	"github.com/bethsalao/BS-BookingService/internal/domain"
)

// csvHeader заголовок экспорта журнала записей
const csvHeader = "Cliente,Serviço,Data,Início,Término,Status\n"

// ExportCSV выгружает весь журнал записей (включая отмененные) в плоский
// CSV для админа
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	s.logger.Info("ExportCSV: exporting appointments journal")

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, domain.AppointmentsFilter{
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("ExportCSV: failed to get appointments: %v", err)
		return "", fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	services, err := s.catalog.List(ctx)
	if err != nil {
		s.logger.Error("ExportCSV: failed to load service catalog: %v", err)
		return "", fmt.Errorf("%w: ExportCSV - catalog error: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d appointments", len(appointments))
	return BuildCSV(appointments, services), nil
}

// BuildCSV собирает CSV из записей и каталога услуг.
// Название услуги разрешается по id; для висячей ссылки пишется "N/A".
// Поля не экранируются: запятая в имени клиента ломает строку —
// известное ограничение формата выгрузки.
func BuildCSV(appointments []*domain.Appointment, services []*domain.Service) string {
	serviceNames := make(map[string]string, len(services))
	for _, svc := range services {
		serviceNames[svc.ID] = svc.Name
	}

	rows := make([]string, len(appointments))
	for i, a := range appointments {
		name, ok := serviceNames[a.ServiceID]
		if !ok {
			name = "N/A"
		}
		rows[i] = strings.Join([]string{
			a.ClientName,
			name,
			a.Date,
			a.StartTime.String(),
			a.EndTime.String(),
			string(a.Status),
		}, ",")
	}

	return csvHeader + strings.Join(rows, "\n")
}
