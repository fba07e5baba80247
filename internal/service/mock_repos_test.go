package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users     map[string]*model.User // keyed by id and by "email:"+email
	userRoles map[string]map[string]bool
	roles     map[string]*model.Role // role catalog used by ListRoles
	seq       int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:     make(map[string]*model.User),
		userRoles: make(map[string]map[string]bool),
		roles:     make(map[string]*model.Role),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	m.users[user.UserID] = user
	m.users["email:"+user.Email] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	roles, _ := m.ListRoles(context.Background(), id)
	cp := *u
	cp.Roles = roles
	return &cp, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.users["email:"+email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	m.users["email:"+user.Email] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string, _ string) error {
	if u, ok := m.users[id]; ok {
		delete(m.users, "email:"+u.Email)
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) List(_ context.Context, offset, limit int) ([]model.User, int64, error) {
	var ids []string
	for k := range m.users {
		if len(k) < 6 || k[:6] != "email:" {
			ids = append(ids, k)
		}
	}
	sort.Strings(ids)

	var all []model.User
	for _, id := range ids {
		all = append(all, *m.users[id])
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockUserRepo) AssignRole(_ context.Context, userID, roleID string) error {
	if m.userRoles[userID] == nil {
		m.userRoles[userID] = make(map[string]bool)
	}
	m.userRoles[userID][roleID] = true
	return nil
}

func (m *mockUserRepo) RemoveRole(_ context.Context, userID, roleID string) error {
	delete(m.userRoles[userID], roleID)
	return nil
}

func (m *mockUserRepo) ListRoles(_ context.Context, userID string) ([]model.Role, error) {
	var ids []string
	for roleID := range m.userRoles[userID] {
		ids = append(ids, roleID)
	}
	sort.Strings(ids)

	var roles []model.Role
	for _, roleID := range ids {
		if r, ok := m.roles[roleID]; ok {
			roles = append(roles, *r)
		} else {
			roles = append(roles, model.Role{RoleID: roleID})
		}
	}
	return roles, nil
}

// ── Mock Role/Permission repositories ──
//
// Both repositories share one state so GrantPermission on the role side is
// visible to ListNamesByRoleIDs on the permission side, mirroring the join
// table they share in the store.

type rbacState struct {
	roles  map[string]*model.Role
	perms  map[string]*model.Permission
	grants map[string]map[string]bool // roleID → permissionIDs
	seq    int
}

type mockRoleRepo struct{ st *rbacState }
type mockPermissionRepo struct{ st *rbacState }

func newMockRBACRepos() (*mockRoleRepo, *mockPermissionRepo) {
	st := &rbacState{
		roles:  make(map[string]*model.Role),
		perms:  make(map[string]*model.Permission),
		grants: make(map[string]map[string]bool),
	}
	return &mockRoleRepo{st: st}, &mockPermissionRepo{st: st}
}

func (m *mockRoleRepo) Create(_ context.Context, role *model.Role) error {
	if role.RoleID == "" {
		m.st.seq++
		role.RoleID = fmt.Sprintf("role-%d", m.st.seq)
	}
	m.st.roles[role.RoleID] = role
	return nil
}

func (m *mockRoleRepo) GetByID(_ context.Context, id string) (*model.Role, error) {
	r, ok := m.st.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	cp.Permissions = nil
	var permIDs []string
	for pid := range m.st.grants[id] {
		permIDs = append(permIDs, pid)
	}
	sort.Strings(permIDs)
	for _, pid := range permIDs {
		if p, ok := m.st.perms[pid]; ok {
			cp.Permissions = append(cp.Permissions, *p)
		}
	}
	return &cp, nil
}

func (m *mockRoleRepo) GetByName(_ context.Context, name string) (*model.Role, error) {
	for _, r := range m.st.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoleRepo) Update(_ context.Context, role *model.Role) error {
	m.st.roles[role.RoleID] = role
	return nil
}

func (m *mockRoleRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.st.roles, id)
	delete(m.st.grants, id)
	return nil
}

func (m *mockRoleRepo) List(_ context.Context, offset, limit int) ([]model.Role, int64, error) {
	var all []model.Role
	for _, r := range m.st.roles {
		all = append(all, *r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockRoleRepo) GrantPermission(_ context.Context, roleID, permissionID string) error {
	if m.st.grants[roleID] == nil {
		m.st.grants[roleID] = make(map[string]bool)
	}
	m.st.grants[roleID][permissionID] = true
	return nil
}

func (m *mockRoleRepo) RevokePermission(_ context.Context, roleID, permissionID string) error {
	delete(m.st.grants[roleID], permissionID)
	return nil
}

func (m *mockPermissionRepo) Create(_ context.Context, permission *model.Permission) error {
	if permission.PermissionID == "" {
		m.st.seq++
		permission.PermissionID = fmt.Sprintf("perm-%d", m.st.seq)
	}
	m.st.perms[permission.PermissionID] = permission
	return nil
}

func (m *mockPermissionRepo) GetByID(_ context.Context, id string) (*model.Permission, error) {
	if p, ok := m.st.perms[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPermissionRepo) GetByName(_ context.Context, name string) (*model.Permission, error) {
	for _, p := range m.st.perms {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPermissionRepo) Update(_ context.Context, permission *model.Permission) error {
	m.st.perms[permission.PermissionID] = permission
	return nil
}

func (m *mockPermissionRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.st.perms, id)
	return nil
}

func (m *mockPermissionRepo) List(_ context.Context, offset, limit int) ([]model.Permission, int64, error) {
	var all []model.Permission
	for _, p := range m.st.perms {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockPermissionRepo) ListNamesByRoleIDs(_ context.Context, roleIDs []string) ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	for _, roleID := range roleIDs {
		for pid := range m.st.grants[roleID] {
			p, ok := m.st.perms[pid]
			if !ok || seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			names = append(names, p.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ── Mock catalog repositories ──

type mockBatchRepo struct {
	batches map[string]*model.Batch
	seq     int
}

func newMockBatchRepo() *mockBatchRepo {
	return &mockBatchRepo{batches: make(map[string]*model.Batch)}
}

func (m *mockBatchRepo) Create(_ context.Context, batch *model.Batch) error {
	if batch.BatchID == "" {
		m.seq++
		batch.BatchID = fmt.Sprintf("batch-%d", m.seq)
	}
	m.batches[batch.BatchID] = batch
	return nil
}

func (m *mockBatchRepo) GetByID(_ context.Context, id string) (*model.Batch, error) {
	if b, ok := m.batches[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBatchRepo) Update(_ context.Context, batch *model.Batch) error {
	m.batches[batch.BatchID] = batch
	return nil
}

func (m *mockBatchRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.batches, id)
	return nil
}

func (m *mockBatchRepo) List(_ context.Context, offset, limit int) ([]model.Batch, int64, error) {
	var all []model.Batch
	for _, b := range m.batches {
		all = append(all, *b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type mockSectionRepo struct {
	sections map[string]*model.Section
	seq      int
}

func newMockSectionRepo() *mockSectionRepo {
	return &mockSectionRepo{sections: make(map[string]*model.Section)}
}

func (m *mockSectionRepo) Create(_ context.Context, section *model.Section) error {
	if section.SectionID == "" {
		m.seq++
		section.SectionID = fmt.Sprintf("section-%d", m.seq)
	}
	m.sections[section.SectionID] = section
	return nil
}

func (m *mockSectionRepo) GetByID(_ context.Context, id string) (*model.Section, error) {
	if s, ok := m.sections[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSectionRepo) Update(_ context.Context, section *model.Section) error {
	m.sections[section.SectionID] = section
	return nil
}

func (m *mockSectionRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.sections, id)
	return nil
}

func (m *mockSectionRepo) List(_ context.Context, batchID string, offset, limit int) ([]model.Section, int64, error) {
	var all []model.Section
	for _, s := range m.sections {
		if batchID != "" && s.BatchID != batchID {
			continue
		}
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type mockCourseRepo struct {
	courses map[string]*model.Course
	seq     int
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*model.Course)}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.CourseID == "" {
		m.seq++
		course.CourseID = fmt.Sprintf("course-%d", m.seq)
	}
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.courses, id)
	return nil
}

func (m *mockCourseRepo) List(_ context.Context, offset, limit int) ([]model.Course, int64, error) {
	var all []model.Course
	for _, c := range m.courses {
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Code < all[j].Code })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type mockRoomRepo struct {
	rooms map[string]*model.Room
	seq   int
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*model.Room)}
}

func (m *mockRoomRepo) Create(_ context.Context, room *model.Room) error {
	if room.RoomID == "" {
		m.seq++
		room.RoomID = fmt.Sprintf("room-%d", m.seq)
	}
	m.rooms[room.RoomID] = room
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id string) (*model.Room, error) {
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) Update(_ context.Context, room *model.Room) error {
	m.rooms[room.RoomID] = room
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.rooms, id)
	return nil
}

func (m *mockRoomRepo) List(_ context.Context, offset, limit int) ([]model.Room, int64, error) {
	var all []model.Room
	for _, r := range m.rooms {
		all = append(all, *r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type mockSlotRepo struct {
	slots map[string]*model.Slot
	seq   int
}

func newMockSlotRepo() *mockSlotRepo {
	return &mockSlotRepo{slots: make(map[string]*model.Slot)}
}

func (m *mockSlotRepo) Create(_ context.Context, slot *model.Slot) error {
	if slot.SlotID == "" {
		m.seq++
		slot.SlotID = fmt.Sprintf("slot-%d", m.seq)
	}
	m.slots[slot.SlotID] = slot
	return nil
}

func (m *mockSlotRepo) GetByID(_ context.Context, id string) (*model.Slot, error) {
	if s, ok := m.slots[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSlotRepo) Update(_ context.Context, slot *model.Slot) error {
	m.slots[slot.SlotID] = slot
	return nil
}

func (m *mockSlotRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.slots, id)
	return nil
}

func (m *mockSlotRepo) List(_ context.Context) ([]model.Slot, error) {
	var all []model.Slot
	for _, s := range m.slots {
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Ordinal < all[j].Ordinal })
	return all, nil
}

// ── Mock WeeklyScheduleRepository ──

type mockScheduleRepo struct {
	schedules map[string]*model.WeeklySchedule
	seq       int
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{schedules: make(map[string]*model.WeeklySchedule)}
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *model.WeeklySchedule) error {
	if schedule.ScheduleID == "" {
		m.seq++
		schedule.ScheduleID = fmt.Sprintf("sched-%d", m.seq)
	}
	m.schedules[schedule.ScheduleID] = schedule
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.WeeklySchedule, error) {
	if s, ok := m.schedules[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) Update(_ context.Context, schedule *model.WeeklySchedule) error {
	m.schedules[schedule.ScheduleID] = schedule
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.schedules, id)
	return nil
}

func (m *mockScheduleRepo) List(_ context.Context, filter repository.WeeklyScheduleFilter, offset, limit int) ([]model.WeeklySchedule, int64, error) {
	var all []model.WeeklySchedule
	for _, s := range m.schedules {
		if filter.Day != "" && s.Day != filter.Day {
			continue
		}
		if filter.SectionID != "" && s.SectionID != filter.SectionID {
			continue
		}
		if filter.TeacherID != "" && s.TeacherID != filter.TeacherID {
			continue
		}
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ScheduleID < all[j].ScheduleID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockScheduleRepo) ListAll(_ context.Context) ([]model.WeeklySchedule, error) {
	var all []model.WeeklySchedule
	for _, s := range m.schedules {
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ScheduleID < all[j].ScheduleID })
	return all, nil
}

// ── Mock ClassHistoryRepository ──

type mockClassHistoryRepo struct {
	histories map[string]*model.ClassHistory
	byKey     map[string]string // "date:slot:section" → historyID
	seq       int
}

func newMockClassHistoryRepo() *mockClassHistoryRepo {
	return &mockClassHistoryRepo{
		histories: make(map[string]*model.ClassHistory),
		byKey:     make(map[string]string),
	}
}

func historyKey(h *model.ClassHistory) string {
	return fmt.Sprintf("%s:%s:%s", h.Date.Format("2006-01-02"), h.SlotID, h.SectionID)
}

func (m *mockClassHistoryRepo) Create(_ context.Context, history *model.ClassHistory) error {
	if history.HistoryID == "" {
		m.seq++
		history.HistoryID = fmt.Sprintf("hist-%d", m.seq)
	}
	m.histories[history.HistoryID] = history
	m.byKey[historyKey(history)] = history.HistoryID
	return nil
}

func (m *mockClassHistoryRepo) GetByID(_ context.Context, id string) (*model.ClassHistory, error) {
	if h, ok := m.histories[id]; ok {
		cp := *h
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassHistoryRepo) GetByDateSlotSection(_ context.Context, date time.Time, slotID, sectionID string) (*model.ClassHistory, error) {
	key := fmt.Sprintf("%s:%s:%s", date.Format("2006-01-02"), slotID, sectionID)
	if id, ok := m.byKey[key]; ok {
		cp := *m.histories[id]
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassHistoryRepo) Update(_ context.Context, history *model.ClassHistory) error {
	m.histories[history.HistoryID] = history
	return nil
}

func (m *mockClassHistoryRepo) Delete(_ context.Context, id string, _ string) error {
	if h, ok := m.histories[id]; ok {
		delete(m.byKey, historyKey(h))
	}
	delete(m.histories, id)
	return nil
}

func (m *mockClassHistoryRepo) List(_ context.Context, filter repository.ClassHistoryFilter, offset, limit int) ([]model.ClassHistory, int64, error) {
	var all []model.ClassHistory
	for _, h := range m.histories {
		if filter.From != nil && h.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && h.Date.After(*filter.To) {
			continue
		}
		if filter.SectionID != "" && h.SectionID != filter.SectionID {
			continue
		}
		if filter.TeacherID != "" && h.TeacherID != filter.TeacherID {
			continue
		}
		if filter.Status != "" && h.Status != filter.Status {
			continue
		}
		all = append(all, *h)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].HistoryID < all[j].HistoryID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockClassHistoryRepo) BatchInsertIgnore(_ context.Context, rows []model.ClassHistory) (int64, error) {
	var inserted int64
	for i := range rows {
		row := rows[i]
		if _, exists := m.byKey[historyKey(&row)]; exists {
			continue
		}
		m.seq++
		if row.HistoryID == "" {
			row.HistoryID = fmt.Sprintf("hist-%d", m.seq)
		}
		m.histories[row.HistoryID] = &row
		m.byKey[historyKey(&row)] = row.HistoryID
		inserted++
	}
	return inserted, nil
}

// ── aggregate helpers ──

// repositoryFixture bundles the aggregate with the raw mocks so tests can
// seed state directly.
type repositoryFixture struct {
	repo  *repository.Repository
	mocks *mockRepos
}

type mockRepos struct {
	user     *mockUserRepo
	role     *mockRoleRepo
	perm     *mockPermissionRepo
	batch    *mockBatchRepo
	section  *mockSectionRepo
	course   *mockCourseRepo
	room     *mockRoomRepo
	slot     *mockSlotRepo
	schedule *mockScheduleRepo
	history  *mockClassHistoryRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	roleRepo, permRepo := newMockRBACRepos()
	m := &mockRepos{
		user:     newMockUserRepo(),
		role:     roleRepo,
		perm:     permRepo,
		batch:    newMockBatchRepo(),
		section:  newMockSectionRepo(),
		course:   newMockCourseRepo(),
		room:     newMockRoomRepo(),
		slot:     newMockSlotRepo(),
		schedule: newMockScheduleRepo(),
		history:  newMockClassHistoryRepo(),
	}
	// keep the user repo's role catalog in sync with the rbac state
	m.user.roles = roleRepo.st.roles

	repo := &repository.Repository{
		User:         m.user,
		Role:         m.role,
		Permission:   m.perm,
		Batch:        m.batch,
		Section:      m.section,
		Course:       m.course,
		Room:         m.room,
		Slot:         m.slot,
		Schedule:     m.schedule,
		ClassHistory: m.history,
	}
	return repo, m
}
