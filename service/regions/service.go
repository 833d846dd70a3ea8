// Package regions resolves the regions a scan covers.
package regions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// ErrNoRegions is returned when no source yields a region.
var ErrNoRegions = errors.New("no regions to scan")

// NewService creates a new region discovery service.
func NewService(cfg aws.Config) Service {
	return &service{client: ec2.NewFromConfig(cfg)}
}

// NewServiceWithClient creates a new region discovery service with a provided client (for testing).
func NewServiceWithClient(client EC2ClientAPI) Service {
	return &service{client: client}
}

// Discover returns the regions enabled for the account.
func (s *service) Discover(ctx context.Context) ([]string, error) {
	out, err := s.client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to discover regions: %w", err)
	}

	regions := make([]string, 0, len(out.Regions))
	for _, r := range out.Regions {
		regions = append(regions, aws.ToString(r.RegionName))
	}

	regions = Dedupe(regions)
	if len(regions) == 0 {
		return nil, ErrNoRegions
	}
	return regions, nil
}

// Parse reads a region list written as a JSON array, a python style list
// such as ['eu-north-1', 'eu-west-2'], or comma separated names.
func Parse(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if strings.HasPrefix(raw, "[") {
		var list []string
		if err := json.Unmarshal([]byte(strings.ReplaceAll(raw, "'", `"`)), &list); err != nil {
			return nil, fmt.Errorf("invalid region list %q: %w", raw, err)
		}
		return Dedupe(list), nil
	}

	return Dedupe(strings.Split(raw, ",")), nil
}

// Dedupe trims names, drops empty ones and keeps the first occurrence of each.
func Dedupe(input []string) []string {
	out := make([]string, 0, len(input))
	for _, r := range input {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

// Resolve picks the first non-empty source. svc is only called for
// --all-regions.
func Resolve(ctx context.Context, src Sources, svc Service) ([]string, error) {
	if regions := Dedupe(src.Flag); len(regions) > 0 {
		return regions, nil
	}

	if src.AllRegions {
		return svc.Discover(ctx)
	}

	if regions := Dedupe(src.Configured); len(regions) > 0 {
		return regions, nil
	}

	if regions := Dedupe([]string{src.Default}); len(regions) > 0 {
		return regions, nil
	}

	return nil, ErrNoRegions
}
