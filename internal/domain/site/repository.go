package site

import "context"

type SiteRepository interface {
	Create(ctx context.Context, s Site) (Site, error)

	GetByID(ctx context.Context, id string, adminID string) (Site, error)

	List(ctx context.Context, adminID string, activeOnly bool) ([]Site, error)

	CountActive(ctx context.Context, adminID string) (int, error)
}
