package usecase

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// CartUsecaseはセッション中のカート本体（メモリ上）と、
// carts/{userID} への書き込みミラーを担当する。
//
// 永続化は楽観的・ベストエフォート:
// - 変更操作はメモリを先に更新し、書き込み完了を待たずに返る
// - 書き込みはユーザー横断の単一ワーカーが発行順に処理する
// - 失敗はログとLastSyncErrorに記録するだけで、メモリ側は巻き戻さない
//   （メモリと永続側が静かに乖離し得るのは設計上の割り切り）
type CartUsecase struct {
	carts    repo.CartRepository
	products repo.ProductRepository

	mu    sync.Mutex
	state map[string]*model.Cart

	jobs chan persistJob
	wg   sync.WaitGroup

	syncMu   sync.Mutex
	syncErrs map[string]error

	closeOnce sync.Once
}

type persistJob struct {
	cart model.Cart
}

func NewCartUsecase(carts repo.CartRepository, products repo.ProductRepository) *CartUsecase {
	u := &CartUsecase{
		carts:    carts,
		products: products,
		state:    make(map[string]*model.Cart),
		jobs:     make(chan persistJob, 128),
		syncErrs: make(map[string]error),
	}

	go u.persistWorker()
	return u
}

// AddProductは商品を取得してカートへ追加する。
// 同一商品は数量+1、無ければ数量1で入る。
func (u *CartUsecase) AddProduct(ctx context.Context, userID string, productID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return ToCartResponse(u.Add(userID, p)), nil
}

// Addはカートへ追加してスナップショットを返す。
// 未サインイン（userID空）は空カートを返すだけで、永続化もしない。
func (u *CartUsecase) Add(userID string, p model.Product) model.Cart {
	if userID == "" {
		return model.Cart{}
	}

	u.mu.Lock()
	c := u.ensureLocked(userID)
	c.Add(p)
	snap := u.snapshotLocked(c)
	u.mu.Unlock()

	u.enqueuePersist(snap)
	return snap
}

// Removeは明細を削除する。無ければ何もしないが、保存は出す。
func (u *CartUsecase) Remove(userID string, productID string) model.Cart {
	if userID == "" {
		return model.Cart{}
	}

	u.mu.Lock()
	c := u.ensureLocked(userID)
	c.Remove(productID)
	snap := u.snapshotLocked(c)
	u.mu.Unlock()

	u.enqueuePersist(snap)
	return snap
}

// SetQuantityは数量を変更する。1未満は1に丸める。
func (u *CartUsecase) SetQuantity(userID string, productID string, quantity int64) model.Cart {
	if userID == "" {
		return model.Cart{}
	}

	u.mu.Lock()
	c := u.ensureLocked(userID)
	c.SetQuantity(productID, quantity)
	snap := u.snapshotLocked(c)
	u.mu.Unlock()

	u.enqueuePersist(snap)
	return snap
}

// Clearはカートを空にする（docは空状態で上書き、削除はしない）。
func (u *CartUsecase) Clear(userID string) model.Cart {
	if userID == "" {
		return model.Cart{}
	}

	u.mu.Lock()
	c := u.ensureLocked(userID)
	c.Clear()
	snap := u.snapshotLocked(c)
	u.mu.Unlock()

	u.enqueuePersist(snap)
	return snap
}

// Getは現在のメモリ状態のスナップショットを返す。
func (u *CartUsecase) Get(userID string) model.Cart {
	if userID == "" {
		return model.Cart{}
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshotLocked(u.ensureLocked(userID))
}

// Totalは Σ(価格 × 数量)。メモリ状態だけから計算する純関数。
func (u *CartUsecase) Total(userID string) int64 {
	if userID == "" {
		return 0
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ensureLocked(userID).Total()
}

// LastSyncErrorは直近の保存失敗を返す（成功でクリア）。
// フロントが乖離を検知できるようにするための窓。
func (u *CartUsecase) LastSyncError(userID string) error {
	u.syncMu.Lock()
	defer u.syncMu.Unlock()
	return u.syncErrs[userID]
}

// OnSessionEventはサインインで永続側からカートを丸ごと読み直し、
// サインアウトでメモリ状態を破棄する（永続側は触らない）。
func (u *CartUsecase) OnSessionEvent(ev SessionEvent) {
	switch ev.Kind {
	case SessionSignedIn:
		u.loadForUser(ev.Identity.ID)
	case SessionSignedOut:
		u.mu.Lock()
		delete(u.state, ev.Identity.ID)
		u.mu.Unlock()
	}
}

// Flushは発行済みの保存がすべて完了するまで待つ。テストとシャットダウン用。
func (u *CartUsecase) Flush() {
	u.wg.Wait()
}

// Closeは保存キューを閉じる。以後の変更操作は呼ばないこと。
func (u *CartUsecase) Close() {
	u.wg.Wait()
	u.closeOnce.Do(func() { close(u.jobs) })
}

func (u *CartUsecase) loadForUser(userID string) {
	if userID == "" {
		return
	}

	loaded, err := u.carts.FindByUserID(context.Background(), userID)
	if err != nil {
		// 読めなかったら空カートで開始（エラーはログのみ）
		log.Printf("[cart] load failed uid=%s: %v", userID, err)
		loaded = model.Cart{UserID: userID}
	}

	u.mu.Lock()
	u.state[userID] = &loaded
	u.mu.Unlock()
}

func (u *CartUsecase) ensureLocked(userID string) *model.Cart {
	c, ok := u.state[userID]
	if !ok {
		c = &model.Cart{UserID: userID}
		u.state[userID] = c
	}
	return c
}

func (u *CartUsecase) snapshotLocked(c *model.Cart) model.Cart {
	return model.Cart{
		UserID:    c.UserID,
		Items:     c.CopyItems(),
		UpdatedAt: c.UpdatedAt,
	}
}

func (u *CartUsecase) enqueuePersist(snap model.Cart) {
	snap.UpdatedAt = time.Now().UTC()
	u.wg.Add(1)
	u.jobs <- persistJob{cart: snap}
}

// 単一ワーカーで発行順に書く。
// 一度発行した書き込みは中断しない（リクエストのcontextには紐付けない）。
func (u *CartUsecase) persistWorker() {
	for job := range u.jobs {
		err := u.carts.Save(context.Background(), job.cart)

		u.syncMu.Lock()
		if err != nil {
			u.syncErrs[job.cart.UserID] = err
		} else {
			delete(u.syncErrs, job.cart.UserID)
		}
		u.syncMu.Unlock()

		if err != nil {
			log.Printf("[cart] persist failed uid=%s: %v", job.cart.UserID, err)
		}

		u.wg.Done()
	}
}

// CartItemResponseはAPIのカート明細。
type CartItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

// CartResponseはAPIのカート。
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

func ToCartResponse(c model.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return CartResponse{Items: items, Total: c.Total()}
}
