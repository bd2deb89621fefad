package services

import (
	"newsbridge-api/models"

	"gorm.io/gorm"
)

type featuredCall struct {
	limit    int
	language models.Language
}

type countCall struct {
	categoryID *uint
	language   models.Language
}

type fakeArticleRepo struct {
	articles map[uint]*models.Article
	nextID   uint

	featured    []models.Article
	list        []models.Article
	searched    []models.Article
	total       int64
	updateErr   error
	createErr   error
	listErr     error
	featuredErr error

	featuredCalls []featuredCall
	listCalls     []models.ListArticlesParams
	searchCalls   []models.SearchArticlesParams
	countCalls    []countCall
	updatedFields []map[string]interface{}
	updatedIDs    []uint
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[uint]*models.Article{}, nextID: 1}
}

func (f *fakeArticleRepo) Create(article *models.Article) error {
	if f.createErr != nil {
		return f.createErr
	}
	article.ID = f.nextID
	f.nextID++
	stored := *article
	f.articles[article.ID] = &stored
	return nil
}

func (f *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	article, ok := f.articles[id]
	if !ok {
		return nil, models.ErrArticleNotFound
	}
	copied := *article
	return &copied, nil
}

func (f *fakeArticleRepo) GetList(params models.ListArticlesParams) ([]models.Article, error) {
	f.listCalls = append(f.listCalls, params)
	return f.list, f.listErr
}

func (f *fakeArticleRepo) GetFeatured(limit int, language models.Language) ([]models.Article, error) {
	f.featuredCalls = append(f.featuredCalls, featuredCall{limit: limit, language: language})
	return f.featured, f.featuredErr
}

func (f *fakeArticleRepo) Search(params models.SearchArticlesParams) ([]models.Article, error) {
	f.searchCalls = append(f.searchCalls, params)
	return f.searched, nil
}

func (f *fakeArticleRepo) Count(categoryID *uint, language models.Language) (int64, error) {
	f.countCalls = append(f.countCalls, countCall{categoryID: categoryID, language: language})
	return f.total, nil
}

func (f *fakeArticleRepo) Update(id uint, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.articles[id]; !ok {
		return models.ErrArticleNotFound
	}
	f.updatedIDs = append(f.updatedIDs, id)
	f.updatedFields = append(f.updatedFields, fields)
	return nil
}

type fakeCategoryRepo struct {
	categories []models.Category
	createErr  error
	created    []*models.Category
	allCalls   []bool
}

func (f *fakeCategoryRepo) Create(category *models.Category) error {
	if f.createErr != nil {
		return f.createErr
	}
	category.ID = uint(len(f.created) + 1)
	f.created = append(f.created, category)
	return nil
}

func (f *fakeCategoryRepo) GetByID(id uint) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, models.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) GetAll(activeOnly bool) ([]models.Category, error) {
	f.allCalls = append(f.allCalls, activeOnly)
	return f.categories, nil
}

type fakePreferenceRepo struct {
	stored      map[string]*models.UserPreference
	upsertCalls int
	assignments []map[string]interface{}
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{stored: map[string]*models.UserPreference{}}
}

func (f *fakePreferenceRepo) GetByUserID(userID string) (*models.UserPreference, error) {
	pref, ok := f.stored[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *pref
	return &copied, nil
}

func (f *fakePreferenceRepo) Upsert(pref *models.UserPreference, assignments map[string]interface{}) error {
	f.upsertCalls++
	f.assignments = append(f.assignments, assignments)

	existing, ok := f.stored[pref.UserID]
	if !ok {
		stored := *pref
		stored.ID = uint(len(f.stored) + 1)
		f.stored[pref.UserID] = &stored
		return nil
	}

	// Mirror the conflict path: only assignments touch the existing row.
	if theme, ok := assignments["theme"]; ok {
		existing.Theme = theme.(models.Theme)
	}
	if language, ok := assignments["language"]; ok {
		existing.Language = language.(models.Language)
	}
	if order, ok := assignments["category_order"]; ok {
		existing.CategoryOrder = order.(models.IDList)
	}
	return nil
}

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return &models.User{}, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return &models.User{}, gorm.ErrRecordNotFound
}
