package server

import (
	"context"

	"github.com/gin-gonic/gin"

	"codecircle/pkg/utils/resp"
	"codecircle/platform/client"
	"codecircle/platform/vo"
)

// servicesRouter exposes the org listings of the downstream services, so
// the UI can offer existing orgs for connecting. All listings degrade to an
// empty list when the service is unreachable.
func (s *Server) servicesRouter() {
	servicesGroup := s.Group("/api/platform/services")
	{
		servicesGroup.GET("/fixai/orgs", s.handleListOrgs(func(ctx context.Context) ([]client.Org, error) {
			return s.clients.FixAI.ListOrganizations(ctx)
		}))
		servicesGroup.GET("/logs/orgs", s.handleListOrgs(func(ctx context.Context) ([]client.Org, error) {
			return s.clients.Logs.ListOrganizations(ctx)
		}))
		servicesGroup.GET("/code_parser/orgs", s.handleListOrgs(func(ctx context.Context) ([]client.Org, error) {
			return s.clients.CodeParser.ListOrganizations(ctx)
		}))
		servicesGroup.GET("/metrics/orgs", s.handleListMetricsOrgs())
	}
}

func (s *Server) handleListOrgs(list func(ctx context.Context) ([]client.Org, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgs, err := list(c.Request.Context())
		if err != nil {
			s.logger.Warningf("list orgs failed: %v", err)
			resp.OK(c, []vo.ServiceOrgVo{})
			return
		}

		vos := make([]vo.ServiceOrgVo, 0, len(orgs))
		for _, o := range orgs {
			vos = append(vos, vo.ServiceOrgVo{
				ID:          o.ID.String(),
				Name:        o.Name,
				Slug:        o.Slug,
				Description: o.Description,
			})
		}
		resp.OK(c, vos)
	}
}

// handleListMetricsOrgs queries the metrics-explorer schema directly:
// metrics-explorer has no list-orgs API.
func (s *Server) handleListMetricsOrgs() gin.HandlerFunc {
	type orgRow struct {
		ID          string
		Name        string
		Slug        *string
		Description *string
	}

	return func(c *gin.Context) {
		var rows []orgRow
		err := s.db.WithContext(c.Request.Context()).
			Raw("SELECT id, name, slug, description FROM metrics_explorer.organizations ORDER BY name").
			Scan(&rows).Error
		if err != nil {
			s.logger.Warningf("query metrics_explorer organizations failed: %v", err)
			resp.OK(c, []vo.ServiceOrgVo{})
			return
		}

		vos := make([]vo.ServiceOrgVo, 0, len(rows))
		for _, r := range rows {
			vos = append(vos, vo.ServiceOrgVo{
				ID:          r.ID,
				Name:        r.Name,
				Slug:        r.Slug,
				Description: r.Description,
			})
		}
		resp.OK(c, vos)
	}
}
