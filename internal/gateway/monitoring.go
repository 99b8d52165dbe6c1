package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Zomujo/dial4inclusion/internal/domain"
)

// Stats fetches aggregate counters, optionally scoped to a district.
func (c *Client) Stats(ctx context.Context, token string, district *domain.District) (*domain.ComplaintStats, error) {
	values := url.Values{}
	if district != nil {
		values.Set("district", string(*district))
	}
	var stats domain.ComplaintStats
	if err := c.get(ctx, "/complaints/stats"+encodeQuery(values), token, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// NavigatorUpdates fetches the recent-activity feed.
func (c *Client) NavigatorUpdates(ctx context.Context, token string, district *domain.District, page, pageSize int) ([]domain.NavigatorUpdate, error) {
	values := url.Values{}
	if district != nil {
		values.Set("district", string(*district))
	}
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		values.Set("pageSize", strconv.Itoa(pageSize))
	}
	var updates []domain.NavigatorUpdate
	if err := c.get(ctx, "/complaints/navigator-updates"+encodeQuery(values), token, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// OverdueComplaints fetches complaints past their expected resolution date.
func (c *Client) OverdueComplaints(ctx context.Context, token string) ([]domain.Complaint, error) {
	var complaints []domain.Complaint
	if err := c.get(ctx, "/complaints/overdue", token, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}
