package board

// RegionID — хэндл региона в партиции. Регионы живут в map-арене и
// адресуются только хэндлами, чтобы слияния и расколы были переприсвоением
// индексов, а не перешивкой графа указателей.
type RegionID int

const NoRegion RegionID = -1

// Region — максимальное связное множество точек одного состояния.
// Производные атрибуты кэшируются и лениво пересчитываются: gen растёт при
// каждом изменении множества точек или занятости соседей, кэш валиден, пока
// cache.gen == gen.
type Region struct {
	id     RegionID
	state  State
	points []int

	part  *Partition
	gen   uint64
	cache regionCache
}

type regionCache struct {
	gen       uint64
	computed  bool
	liberties int
	adjacent  []RegionID
}

func (r *Region) ID() RegionID { return r.id }

// Color — состояние-владелец региона.
func (r *Region) Color() State { return r.state }

// IsStoneGroup сообщает, является ли регион группой камней.
func (r *Region) IsStoneGroup() bool { return r.state != Empty }

// Size — число точек региона, O(1).
func (r *Region) Size() int { return len(r.points) }

// Points отдаёт индексы точек региона. Срез принадлежит региону,
// вызывающий не должен его менять.
func (r *Region) Points() []int { return r.points }

// Vertices отдаёт вершины точек региона в свежем срезе.
func (r *Region) Vertices() []Vertex {
	vs := make([]Vertex, len(r.points))
	for i, idx := range r.points {
		vs[i] = r.part.grid.PointAt(idx).Vertex
	}
	return vs
}

// Liberties — число различных пустых точек, смежных с регионом. Значение
// осмысленно только для групп камней; для пустых регионов возвращается 0.
func (r *Region) Liberties() int {
	r.refresh()
	if r.state == Empty {
		return 0
	}
	return r.cache.liberties
}

// AdjacentRegions — хэндлы регионов, смежных с данным.
func (r *Region) AdjacentRegions() []RegionID {
	r.refresh()
	return r.cache.adjacent
}

// refresh пересчитывает кэш ровно один раз после последнего изменения.
func (r *Region) refresh() {
	if r.cache.computed && r.cache.gen == r.gen {
		return
	}

	grid := r.part.grid
	libs := make(map[int]struct{})
	adj := make(map[RegionID]struct{})
	var buf [4]int
	for _, idx := range r.points {
		for _, nb := range grid.Neighbors(idx, &buf) {
			np := grid.PointAt(nb)
			if np.Region != r.id {
				adj[np.Region] = struct{}{}
			}
			if np.State == Empty && np.Region != r.id {
				libs[nb] = struct{}{}
			}
		}
	}

	r.cache = regionCache{
		gen:       r.gen,
		computed:  true,
		liberties: len(libs),
		adjacent:  make([]RegionID, 0, len(adj)),
	}
	for id := range adj {
		r.cache.adjacent = append(r.cache.adjacent, id)
	}
}

// invalidate помечает кэш устаревшим. Вызывается партицией для каждого
// затронутого мутацией региона.
func (r *Region) invalidate() {
	r.gen++
}
