package repos

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/yungbote/contacts-backend/internal/db"
	"github.com/yungbote/contacts-backend/internal/types"
)

// memExec is an in-memory stand-in for the pgx-backed executor. It dispatches
// on the repository statement constants and reproduces the conflict-as-empty
// RETURNING behavior of the real schema, which is the part under test.
type memExec struct {
	addresses map[string]*types.Address
	users     map[string]*types.User
	links     map[string]map[string]struct{}

	clock time.Time

	// failErr makes every call fail, simulating a lost connection.
	failErr error
	// Race-injection hooks, run after the lookup-first miss and before the
	// insert is applied.
	beforeInsertUser    func(m *memExec)
	beforeInsertAddress func(m *memExec)
}

func newMemExec() *memExec {
	return &memExec{
		addresses: map[string]*types.Address{},
		users:     map[string]*types.User{},
		links:     map[string]map[string]struct{}{},
		clock:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memExec) now() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memExec) userByEmail(email string) *types.User {
	for _, u := range m.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (m *memExec) putAddress(key, countryID, city, state, zip string) *types.Address {
	now := m.now()
	a := &types.Address{
		AddressKey: key, CountryID: countryID, City: city, State: state, ZipCode: zip,
		CreatedAt: now, UpdatedAt: now,
	}
	m.addresses[key] = a
	return a
}

func (m *memExec) putUser(key, first, last, email string) *types.User {
	now := m.now()
	u := &types.User{
		UserKey: key, FirstName: first, LastName: last, Email: email,
		CreatedAt: now, UpdatedAt: now,
	}
	m.users[key] = u
	return u
}

func (m *memExec) QueryRow(_ context.Context, sql string, args ...any) db.Row {
	if m.failErr != nil {
		return &fakeRow{err: m.failErr}
	}
	switch sql {
	case sqlFindAddressByKey:
		a, ok := m.addresses[args[0].(string)]
		if !ok {
			return &fakeRow{err: pgx.ErrNoRows}
		}
		return &fakeRow{vals: addressVals(a)}

	case sqlInsertAddress:
		if m.beforeInsertAddress != nil {
			hook := m.beforeInsertAddress
			m.beforeInsertAddress = nil
			hook(m)
		}
		key := args[0].(string)
		if _, ok := m.addresses[key]; ok {
			return &fakeRow{err: pgx.ErrNoRows}
		}
		a := m.putAddress(key, args[1].(string), args[2].(string), args[3].(string), args[4].(string))
		return &fakeRow{vals: addressVals(a)}

	case sqlFindUserByEmail:
		u := m.userByEmail(args[0].(string))
		if u == nil {
			return &fakeRow{err: pgx.ErrNoRows}
		}
		return &fakeRow{vals: userVals(u)}

	case sqlFindUserByKey:
		u, ok := m.users[args[0].(string)]
		if !ok {
			return &fakeRow{err: pgx.ErrNoRows}
		}
		return &fakeRow{vals: userVals(u)}

	case sqlInsertUser:
		if m.beforeInsertUser != nil {
			hook := m.beforeInsertUser
			m.beforeInsertUser = nil
			hook(m)
		}
		key := args[0].(string)
		email := args[3].(string)
		if _, ok := m.users[key]; ok {
			return &fakeRow{err: pgx.ErrNoRows}
		}
		if m.userByEmail(email) != nil {
			return &fakeRow{err: pgx.ErrNoRows}
		}
		u := m.putUser(key, args[1].(string), args[2].(string), email)
		return &fakeRow{vals: userVals(u)}

	case sqlUpdateUserNames:
		u := m.userByEmail(args[2].(string))
		if u == nil {
			return &fakeRow{err: pgx.ErrNoRows}
		}
		u.FirstName = args[0].(string)
		u.LastName = args[1].(string)
		u.UpdatedAt = m.now()
		return &fakeRow{vals: userVals(u)}

	default:
		return &fakeRow{err: fmt.Errorf("unexpected statement: %s", sql)}
	}
}

func (m *memExec) Exec(_ context.Context, sql string, args ...any) (int64, error) {
	if m.failErr != nil {
		return 0, m.failErr
	}
	switch sql {
	case sqlInsertLink:
		userKey := args[0].(string)
		addressKey := args[1].(string)
		set, ok := m.links[userKey]
		if !ok {
			set = map[string]struct{}{}
			m.links[userKey] = set
		}
		if _, ok := set[addressKey]; ok {
			return 0, nil
		}
		set[addressKey] = struct{}{}
		return 1, nil

	case sqlDeleteLinksForUser:
		userKey := args[0].(string)
		n := int64(len(m.links[userKey]))
		delete(m.links, userKey)
		return n, nil

	case sqlDeleteOrphanAddresses:
		referenced := map[string]struct{}{}
		for _, set := range m.links {
			for addressKey := range set {
				referenced[addressKey] = struct{}{}
			}
		}
		var deleted int64
		for key := range m.addresses {
			if _, ok := referenced[key]; !ok {
				delete(m.addresses, key)
				deleted++
			}
		}
		return deleted, nil

	case sqlDeleteUserByKey:
		key := args[0].(string)
		if _, ok := m.users[key]; !ok {
			return 0, nil
		}
		delete(m.users, key)
		return 1, nil

	default:
		return 0, fmt.Errorf("unexpected statement: %s", sql)
	}
}

func (m *memExec) Query(_ context.Context, sql string, _ ...any) (db.Rows, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	switch sql {
	case sqlListUsers:
		users := make([]*types.User, 0, len(m.users))
		for _, u := range m.users {
			users = append(users, u)
		}
		sort.Slice(users, func(i, j int) bool {
			if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
				return users[i].CreatedAt.After(users[j].CreatedAt)
			}
			return users[i].Email < users[j].Email
		})
		rows := make([][]any, 0, len(users))
		for _, u := range users {
			rows = append(rows, userVals(u))
		}
		return &fakeRows{rows: rows}, nil
	default:
		return nil, fmt.Errorf("unexpected statement: %s", sql)
	}
}

func addressVals(a *types.Address) []any {
	return []any{a.AddressKey, a.CountryID, a.City, a.State, a.ZipCode, a.CreatedAt, a.UpdatedAt}
}

func userVals(u *types.User) []any {
	return []any{u.UserKey, u.FirstName, u.LastName, u.Email, u.CreatedAt, u.UpdatedAt}
}

type fakeRow struct {
	err  error
	vals []any
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(dest, r.vals)
}

type fakeRows struct {
	rows [][]any
	idx  int
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(dest, r.rows[r.idx-1])
}

func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Close()     {}

func scanInto(dest, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan column count: want=%d got=%d", len(vals), len(dest))
	}
	for i, v := range vals {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *time.Time:
			*d = v.(time.Time)
		case *int64:
			*d = v.(int64)
		default:
			return fmt.Errorf("unsupported scan destination %T", dest[i])
		}
	}
	return nil
}
