package alias_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"hme/internal/domain"
	"hme/internal/services/alias"
)

// fakeClient serves a fixed alias set and records mutations.
type fakeClient struct {
	aliases []domain.Alias

	created     []string // labels passed to CreateAlias
	updates     map[string][2]string
	activeCalls map[string]bool
	deleteCalls []string
}

func newFakeClient(aliases ...domain.Alias) *fakeClient {
	return &fakeClient{
		aliases:     aliases,
		updates:     map[string][2]string{},
		activeCalls: map[string]bool{},
	}
}

func (f *fakeClient) Login(context.Context, domain.Credentials, domain.Session) (domain.Session, error) {
	return domain.Session{}, errors.New("not used")
}

func (f *fakeClient) VerifyCode(context.Context, domain.Session, string) (domain.Session, error) {
	return domain.Session{}, errors.New("not used")
}

func (f *fakeClient) Resume(context.Context, domain.Session) (domain.Session, error) {
	return domain.Session{}, errors.New("not used")
}

func (f *fakeClient) ListAliases(context.Context, domain.Session) ([]domain.Alias, error) {
	out := make([]domain.Alias, len(f.aliases))
	copy(out, f.aliases)
	return out, nil
}

func (f *fakeClient) CreateAlias(_ context.Context, _ domain.Session, label, note string) (domain.Alias, error) {
	f.created = append(f.created, label)
	a := domain.Alias{
		AnonymousID: fmt.Sprintf("anon-%d", len(f.aliases)+1),
		Address:     fmt.Sprintf("random%d@icloud.com", len(f.aliases)+1),
		Label:       label,
		Note:        note,
		Active:      true,
	}
	f.aliases = append(f.aliases, a)
	return a, nil
}

func (f *fakeClient) UpdateAlias(_ context.Context, _ domain.Session, id, label, note string) error {
	f.updates[id] = [2]string{label, note}
	for i := range f.aliases {
		if f.aliases[i].AnonymousID == id {
			f.aliases[i].Label, f.aliases[i].Note = label, note
			return nil
		}
	}
	return domain.ErrRemote
}

func (f *fakeClient) SetAliasActive(_ context.Context, _ domain.Session, id string, active bool) error {
	f.activeCalls[id] = active
	for i := range f.aliases {
		if f.aliases[i].AnonymousID == id {
			f.aliases[i].Active = active
			return nil
		}
	}
	return domain.ErrRemote
}

func (f *fakeClient) DeleteAlias(_ context.Context, _ domain.Session, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return nil
}

var _ domain.AccountClient = (*fakeClient)(nil)

func fixtures() []domain.Alias {
	return []domain.Alias{
		{AnonymousID: "anon-1", Address: "shadow.fox12@icloud.com", Label: "Netflix", Note: "family plan", Active: true},
		{AnonymousID: "anon-2", Address: "quiet.owl34@icloud.com", Label: "newsletter", Note: "", Active: false},
		{AnonymousID: "anon-3", Address: "dusty.lane56@icloud.com", Label: "Shopping", Note: "one-off orders", Active: true},
	}
}

func newService(c *fakeClient) *alias.Service {
	return alias.New(c, domain.Session{Account: "user@example.com", APIBase: "https://mail.example.com"})
}

func TestSearch_MatchesLabelAddressNote_CaseInsensitive(t *testing.T) {
	svc := newService(newFakeClient(fixtures()...))
	ctx := context.Background()

	cases := []struct {
		query string
		want  []string // addresses
	}{
		{"netflix", []string{"shadow.fox12@icloud.com"}},   // label, different case
		{"OWL", []string{"quiet.owl34@icloud.com"}},        // address
		{"orders", []string{"dusty.lane56@icloud.com"}},    // note
		{"icloud", []string{"shadow.fox12@icloud.com", "quiet.owl34@icloud.com", "dusty.lane56@icloud.com"}},
		{"zzz", nil},
	}

	for _, tc := range cases {
		got, err := svc.Search(ctx, tc.query)
		if err != nil {
			t.Fatalf("search %q: %v", tc.query, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("search %q: want %d results, got %d", tc.query, len(tc.want), len(got))
		}
		for i, a := range got {
			if a.Address != tc.want[i] {
				t.Fatalf("search %q: want %s at %d, got %s", tc.query, tc.want[i], i, a.Address)
			}
		}
	}
}

func TestSearch_IsSubsetOfList(t *testing.T) {
	svc := newService(newFakeClient(fixtures()...))
	ctx := context.Background()

	all, _, err := svc.List(ctx, false, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	byAddress := map[string]bool{}
	for _, a := range all {
		byAddress[a.Address] = true
	}

	results, err := svc.Search(ctx, "o")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for _, a := range results {
		if !byAddress[a.Address] {
			t.Fatalf("search result %s not in list", a.Address)
		}
	}
}

func TestSearch_EmptyQuery_Validation(t *testing.T) {
	svc := newService(newFakeClient(fixtures()...))
	if _, err := svc.Search(context.Background(), "  "); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestList_ActiveFilter_Idempotent(t *testing.T) {
	svc := newService(newFakeClient(fixtures()...))
	ctx := context.Background()

	first, total, err := svc.List(ctx, true, 0)
	if err != nil {
		t.Fatalf("list --active: %v", err)
	}
	if total != 2 || len(first) != 2 {
		t.Fatalf("want 2 active aliases, got %d (total %d)", len(first), total)
	}
	for _, a := range first {
		if !a.Active {
			t.Fatalf("inactive alias %s in active listing", a.Address)
		}
	}

	// Repeating with no intervening mutation yields the same result.
	second, _, err := svc.List(ctx, true, 0)
	if err != nil {
		t.Fatalf("second list --active: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("filter not stable: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Address != second[i].Address {
			t.Fatalf("filter not stable at %d", i)
		}
	}
}

func TestList_Limit_Truncates(t *testing.T) {
	svc := newService(newFakeClient(fixtures()...))

	shown, total, err := svc.List(context.Background(), false, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(shown) != 2 || total != 3 {
		t.Fatalf("want 2 of 3, got %d of %d", len(shown), total)
	}
}

func TestCreate_ThenList_IncludesNewAlias(t *testing.T) {
	client := newFakeClient(fixtures()...)
	svc := newService(client)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Netflix", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.Active {
		t.Fatal("new alias should be active")
	}

	all, _, err := svc.List(ctx, false, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var found bool
	for _, a := range all {
		if a.Address == created.Address && a.Label == "Netflix" && a.Active {
			found = true
		}
	}
	if !found {
		t.Fatal("created alias missing from listing")
	}
}

func TestCreate_EmptyLabel_Validation(t *testing.T) {
	svc := newService(newFakeClient())
	if _, err := svc.Create(context.Background(), "   ", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestUpdate_LabelOnly_PreservesNoteAndState(t *testing.T) {
	client := newFakeClient(fixtures()...)
	svc := newService(client)

	label := "New"
	got, err := svc.Update(context.Background(), "shadow.fox12@icloud.com", &label, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Label != "New" {
		t.Fatalf("want label New, got %q", got.Label)
	}
	if got.Note != "family plan" {
		t.Fatalf("note changed: %q", got.Note)
	}
	if !got.Active {
		t.Fatal("active state changed")
	}
	if sent := client.updates["anon-1"]; sent != [2]string{"New", "family plan"} {
		t.Fatalf("remote call got %v", sent)
	}
}

func TestUpdate_NoFields_Validation(t *testing.T) {
	svc := newService(newFakeClient(fixtures()...))
	if _, err := svc.Update(context.Background(), "shadow.fox12@icloud.com", nil, nil); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestResolve_ByAddressAndID(t *testing.T) {
	svc := newService(newFakeClient(fixtures()...))
	ctx := context.Background()

	byAddr, err := svc.Resolve(ctx, "quiet.owl34@icloud.com")
	if err != nil {
		t.Fatalf("resolve by address: %v", err)
	}
	byID, err := svc.Resolve(ctx, "anon-2")
	if err != nil {
		t.Fatalf("resolve by id: %v", err)
	}
	if byAddr.AnonymousID != byID.AnonymousID {
		t.Fatal("address and id resolve to different aliases")
	}

	if _, err := svc.Resolve(ctx, "missing@icloud.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := svc.Resolve(ctx, "not an@email"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ErrValidation for malformed email, got %v", err)
	}
}

func TestSetActive_NoOpWhenAlreadyInState(t *testing.T) {
	client := newFakeClient(fixtures()...)
	svc := newService(client)
	ctx := context.Background()

	_, changed, err := svc.SetActive(ctx, "shadow.fox12@icloud.com", true)
	if err != nil {
		t.Fatalf("setactive: %v", err)
	}
	if changed {
		t.Fatal("already-active alias reported as changed")
	}
	if len(client.activeCalls) != 0 {
		t.Fatal("no-op still hit the remote")
	}

	_, changed, err = svc.SetActive(ctx, "shadow.fox12@icloud.com", false)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if !changed || client.activeCalls["anon-1"] != false {
		t.Fatalf("deactivate not forwarded: changed=%v calls=%v", changed, client.activeCalls)
	}
}

func TestDelete_CallsRemoteExactlyOnce(t *testing.T) {
	client := newFakeClient(fixtures()...)
	svc := newService(client)

	a, err := svc.Delete(context.Background(), "dusty.lane56@icloud.com")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if a.AnonymousID != "anon-3" {
		t.Fatalf("deleted wrong alias: %s", a.AnonymousID)
	}
	if len(client.deleteCalls) != 1 || client.deleteCalls[0] != "anon-3" {
		t.Fatalf("want exactly one remote delete of anon-3, got %v", client.deleteCalls)
	}
}

func TestDelete_UnknownTarget_NoRemoteCall(t *testing.T) {
	client := newFakeClient(fixtures()...)
	svc := newService(client)

	if _, err := svc.Delete(context.Background(), "missing@icloud.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if len(client.deleteCalls) != 0 {
		t.Fatalf("remote delete reached for unknown target: %v", client.deleteCalls)
	}
}
