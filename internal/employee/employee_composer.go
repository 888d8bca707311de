package employee

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type ComposeMode int

const (
	ComposeSequential ComposeMode = iota
	ComposeParallel
)

func (m ComposeMode) String() string {
	if m == ComposeParallel {
		return "parallel"
	}
	return "sequential"
}

// Composer attaches the resolved department and role to employees.
type Composer struct {
	resolver *Resolver
}

func NewComposer(resolver *Resolver) *Composer {
	return &Composer{resolver: resolver}
}

func (c *Composer) Compose(ctx context.Context, emp Employee) (EmployeeDetails, error) {
	dept, err := c.resolver.ResolveDepartmentForEmployee(ctx, emp.ID)
	if err != nil {
		return EmployeeDetails{}, err
	}
	rl, err := c.resolver.ResolveRoleForEmployee(ctx, emp.ID)
	if err != nil {
		return EmployeeDetails{}, err
	}

	return EmployeeDetails{
		ID:         emp.ID,
		Name:       emp.Name,
		Email:      emp.Email,
		Department: dept,
		Role:       rl,
	}, nil
}

// ComposeAll composes every employee. Output order always matches input order;
// in parallel mode each goroutine writes its own slot and the first error
// cancels the rest.
func (c *Composer) ComposeAll(ctx context.Context, emps []Employee, mode ComposeMode) ([]EmployeeDetails, error) {
	out := make([]EmployeeDetails, len(emps))

	if mode != ComposeParallel {
		for i, emp := range emps {
			d, err := c.Compose(ctx, emp)
			if err != nil {
				return nil, err
			}
			out[i] = d
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, emp := range emps {
		i, emp := i, emp
		g.Go(func() error {
			d, err := c.Compose(gctx, emp)
			if err != nil {
				return err
			}
			out[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
