package usecase

import (
	"context"
	"testing"

	"github.com/aquasentinel/internal/domain"
	"github.com/aquasentinel/internal/usecase/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOrgRepo struct {
	orgs      []*domain.Organization
	lastTypes []string
}

func (f *fakeOrgRepo) GetAll(ctx context.Context, types []string) ([]*domain.Organization, error) {
	f.lastTypes = types
	if len(types) == 0 {
		return f.orgs, nil
	}
	var filtered []*domain.Organization
	for _, org := range f.orgs {
		for _, t := range types {
			if org.Type == t {
				filtered = append(filtered, org)
			}
		}
	}
	return filtered, nil
}

func testOrgs() []*domain.Organization {
	return []*domain.Organization{
		{ID: "o-1", Name: "Central Pollution Control Board", Type: domain.OrgTypeAuthority, LocationLat: 28.7041, LocationLng: 77.1025},
		{ID: "o-2", Name: "Mumbai Clean Seas NGO", Type: domain.OrgTypeNGO, LocationLat: 19.0760, LocationLng: 72.8777},
	}
}

func TestGetOrganizations_DistanceFromUser(t *testing.T) {
	repo := &fakeOrgRepo{orgs: testOrgs()}
	uc := NewOrganizationUseCase(repo, zap.NewNop(), 19.0760, 72.8777)

	lat, lng := 19.0760, 72.8777
	resp, err := uc.GetOrganizations(context.Background(), dto.OrganizationsRequest{Lat: &lat, Lng: &lng})
	require.NoError(t, err)
	require.Len(t, resp.Organizations, 2)

	// Delhi authority is roughly 1150-1165 km from Mumbai
	assert.GreaterOrEqual(t, resp.Organizations[0].DistanceKm, 1150)
	assert.LessOrEqual(t, resp.Organizations[0].DistanceKm, 1165)

	// Local NGO is at the user's point
	assert.Equal(t, 0, resp.Organizations[1].DistanceKm)
}

func TestGetOrganizations_DefaultCoordinatesFallback(t *testing.T) {
	repo := &fakeOrgRepo{orgs: testOrgs()}
	uc := NewOrganizationUseCase(repo, zap.NewNop(), 19.0760, 72.8777)

	// No coordinates supplied: geolocation denial falls back to defaults,
	// no error is surfaced
	resp, err := uc.GetOrganizations(context.Background(), dto.OrganizationsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Organizations[1].DistanceKm)

	// Out-of-range coordinates are treated the same way
	badLat, badLng := 120.0, 500.0
	resp, err = uc.GetOrganizations(context.Background(), dto.OrganizationsRequest{Lat: &badLat, Lng: &badLng})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Organizations[1].DistanceKm)
}

func TestGetOrganizations_TypeFilter(t *testing.T) {
	repo := &fakeOrgRepo{orgs: testOrgs()}
	uc := NewOrganizationUseCase(repo, zap.NewNop(), 19.0760, 72.8777)

	resp, err := uc.GetOrganizations(context.Background(), dto.OrganizationsRequest{Type: "NGO"})
	require.NoError(t, err)
	require.Len(t, resp.Organizations, 1)
	assert.Equal(t, "Mumbai Clean Seas NGO", resp.Organizations[0].Name)
	assert.Equal(t, []string{"NGO"}, repo.lastTypes)

	// "All" means no filter
	resp, err = uc.GetOrganizations(context.Background(), dto.OrganizationsRequest{Type: "All"})
	require.NoError(t, err)
	assert.Len(t, resp.Organizations, 2)
	assert.Nil(t, repo.lastTypes)
}
