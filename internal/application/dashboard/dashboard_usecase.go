// Package dashboard arma el resumen del dashboard con sumas y conteos sobre las
// colecciones que el rol puede ver.
package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/obra-admin/internal/application/dto"
	"github.com/jhoicas/obra-admin/internal/domain/access"
	"github.com/jhoicas/obra-admin/internal/domain/entity"
	"github.com/jhoicas/obra-admin/internal/domain/repository"
	"github.com/jhoicas/obra-admin/pkg/logger"
)

// Sources colecciones del API que alimentan el dashboard. Las nil se omiten.
type Sources struct {
	Projects         repository.Resource[entity.Project]
	Inventory        repository.Resource[entity.InventoryItem]
	Finances         repository.Resource[entity.FinanceEntry]
	Employees        repository.Resource[entity.Employee]
	Tenders          repository.Resource[entity.Tender]
	MaterialRequests repository.Resource[entity.MaterialRequest]
	MoneyRequests    repository.Resource[entity.MoneyRequest]
}

// DashboardUseCase genera el resumen del usuario.
type DashboardUseCase struct {
	src     Sources
	decider *access.Decider
	log     *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(src Sources, decider *access.Decider, log *logger.Logger) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{src: src, decider: decider, log: log.Component("dashboard")}
}

// GetSummary consulta en paralelo cada sección permitida. Una sección que falla
// se omite con una notificación; solo es error si fallan todas.
//
// Si el usuario tiene proyecto asignado, las colecciones con project_id se
// limitan a ese proyecto.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, user *entity.SessionUser, token string) (*dto.DashboardDTO, error) {
	out := &dto.DashboardDTO{}
	scope := ""
	if user != nil && user.ProjectID != nil {
		scope = *user.ProjectID
		out.ProjectScope = scope
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		started  int
		failures []error
	)
	section := func(module access.Module, enabled bool, run func() error) {
		if !enabled || !uc.decider.Allowed(user, token, string(module)) {
			return
		}
		started++
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := run(); err != nil {
				mu.Lock()
				failures = append(failures, fmt.Errorf("%s: %w", module, err))
				mu.Unlock()
			}
		}()
	}

	section(access.ModuleProyectos, uc.src.Projects != nil, func() error {
		items, err := uc.src.Projects.List(ctx)
		if err != nil {
			return err
		}
		s := summarizeProjects(scopeProjects(items, scope))
		mu.Lock()
		out.Projects = s
		mu.Unlock()
		return nil
	})
	section(access.ModuleInventario, uc.src.Inventory != nil, func() error {
		items, err := uc.src.Inventory.List(ctx)
		if err != nil {
			return err
		}
		s := summarizeInventory(scoped(items, scope))
		mu.Lock()
		out.Inventory = s
		mu.Unlock()
		return nil
	})
	section(access.ModuleFinanzas, uc.src.Finances != nil, func() error {
		items, err := uc.src.Finances.List(ctx)
		if err != nil {
			return err
		}
		s := summarizeFinance(scoped(items, scope))
		mu.Lock()
		out.Finance = s
		mu.Unlock()
		return nil
	})
	section(access.ModuleRRHH, uc.src.Employees != nil, func() error {
		items, err := uc.src.Employees.List(ctx)
		if err != nil {
			return err
		}
		s := summarizeHR(scoped(items, scope))
		mu.Lock()
		out.HR = s
		mu.Unlock()
		return nil
	})
	section(access.ModuleLicitaciones, uc.src.Tenders != nil, func() error {
		items, err := uc.src.Tenders.List(ctx)
		if err != nil {
			return err
		}
		s := summarizeTenders(items)
		mu.Lock()
		out.Tenders = s
		mu.Unlock()
		return nil
	})
	section(access.ModuleSolicitudes, uc.src.MaterialRequests != nil && uc.src.MoneyRequests != nil, func() error {
		mats, err := uc.src.MaterialRequests.List(ctx)
		if err != nil {
			return err
		}
		money, err := uc.src.MoneyRequests.List(ctx)
		if err != nil {
			return err
		}
		s := summarizeRequests(scoped(mats, scope), scoped(money, scope))
		mu.Lock()
		out.Requests = s
		mu.Unlock()
		return nil
	})

	wg.Wait()

	for _, err := range failures {
		uc.log.Warn().Err(err).Msg("sección del dashboard omitida")
		out.Notifications = append(out.Notifications, *dto.NotificationFromError(err))
	}
	if started > 0 && len(failures) == started {
		return out, failures[0]
	}
	return out, nil
}

func scopeProjects(items []entity.Project, scope string) []entity.Project {
	if scope == "" {
		return items
	}
	out := make([]entity.Project, 0, 1)
	for _, p := range items {
		if p.ID == scope {
			out = append(out, p)
		}
	}
	return out
}

type attributer interface {
	Attribute(name string) (string, bool)
}

// scoped deja los registros del proyecto. Los que no tienen project_id son generales y se conservan.
func scoped[T attributer](items []T, scope string) []T {
	if scope == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pid, ok := it.Attribute("project_id"); !ok || pid == "" || pid == scope {
			out = append(out, it)
		}
	}
	return out
}

func summarizeProjects(items []entity.Project) *dto.ProjectsSummaryDTO {
	s := &dto.ProjectsSummaryDTO{Total: len(items), ByStatus: map[string]int{}, TotalBudget: decimal.Zero}
	progress := 0
	for _, p := range items {
		status := p.Status
		if status == "" {
			status = entity.ProjectPlaneacion
		}
		s.ByStatus[status]++
		s.TotalBudget = s.TotalBudget.Add(p.Budget)
		progress += p.Progress
	}
	if len(items) > 0 {
		s.AvgProgress = progress / len(items)
	}
	return s
}

func summarizeInventory(items []entity.InventoryItem) *dto.InventorySummaryDTO {
	s := &dto.InventorySummaryDTO{Items: len(items)}
	for _, it := range items {
		if it.BelowMinimum() {
			s.BelowMinimum++
		}
	}
	return s
}

func summarizeFinance(items []entity.FinanceEntry) *dto.FinanceSummaryDTO {
	s := &dto.FinanceSummaryDTO{Entries: len(items), Income: decimal.Zero, Expense: decimal.Zero}
	for _, f := range items {
		switch f.Kind {
		case entity.FinanceIngreso:
			s.Income = s.Income.Add(f.Amount)
		case entity.FinanceEgreso:
			s.Expense = s.Expense.Add(f.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}

func summarizeHR(items []entity.Employee) *dto.HRSummaryDTO {
	s := &dto.HRSummaryDTO{Total: len(items)}
	for _, e := range items {
		if e.Active {
			s.Active++
		}
	}
	return s
}

func summarizeTenders(items []entity.Tender) *dto.TendersSummaryDTO {
	s := &dto.TendersSummaryDTO{Total: len(items), OpenAmount: decimal.Zero}
	for _, t := range items {
		if t.Open() {
			s.Open++
			s.OpenAmount = s.OpenAmount.Add(t.Amount)
		}
	}
	return s
}

func summarizeRequests(mats []entity.MaterialRequest, money []entity.MoneyRequest) *dto.RequestsSummaryDTO {
	s := &dto.RequestsSummaryDTO{PendingMoneyAmount: decimal.Zero}
	for _, m := range mats {
		if m.Pending() {
			s.PendingMaterials++
		}
	}
	for _, m := range money {
		if m.Pending() {
			s.PendingMoney++
			s.PendingMoneyAmount = s.PendingMoneyAmount.Add(m.Amount)
		}
	}
	return s
}
