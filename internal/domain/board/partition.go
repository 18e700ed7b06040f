package board

import (
	"fmt"
	"sort"

	"goban/internal/errors"
)

// Partition поддерживает разбиение точек доски на максимальные связные
// регионы одинакового состояния. Все мутации должны быть сериализованы
// владельцем доски: слияния и расколы меняют регионы на месте.
type Partition struct {
	grid    *Grid
	regions map[RegionID]*Region
	nextID  RegionID
}

func NewPartition(grid *Grid) *Partition {
	return &Partition{
		grid:    grid,
		regions: make(map[RegionID]*Region),
		nextID:  0,
	}
}

// AssignInitialPartition вызывается один раз при создании доски: вся пустая
// доска — один регион.
func (p *Partition) AssignInitialPartition() {
	r := p.newRegion(Empty)
	r.points = make([]int, p.grid.NumPoints())
	for idx := range r.points {
		r.points[idx] = idx
		p.grid.PointAt(idx).Region = r.id
	}
	r.invalidate()
}

// Region возвращает регион по хэндлу.
func (p *Partition) Region(id RegionID) (*Region, error) {
	r, ok := p.regions[id]
	if !ok {
		return nil, fmt.Errorf("%w: region %d does not exist", errors.ErrInvalidOperation, id)
	}
	return r, nil
}

// RegionOf возвращает регион, владеющий точкой idx.
func (p *Partition) RegionOf(idx int) *Region {
	return p.regions[p.grid.PointAt(idx).Region]
}

// NumRegions — текущее число регионов.
func (p *Partition) NumRegions() int { return len(p.regions) }

// RegionIDs отдаёт хэндлы всех регионов в детерминированном порядке.
func (p *Partition) RegionIDs() []RegionID {
	ids := make([]RegionID, 0, len(p.regions))
	for id := range p.regions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// PlaceStone переводит пустую точку в цвет color: изымает её из пустого
// региона (при необходимости раскалывая его), вливает в одноцветные соседние
// регионы и возвращает смежные регионы противника, оставшиеся без дыханий, —
// кандидатов на снятие. Снимать их или нет, решает Board.
func (p *Partition) PlaceStone(idx int, color State) ([]*Region, error) {
	if idx < 0 || idx >= p.grid.NumPoints() {
		return nil, fmt.Errorf("%w: point index %d out of range", errors.ErrInvalidOperation, idx)
	}
	if color != Black && color != White {
		return nil, fmt.Errorf("%w: cannot place %s stone", errors.ErrInvalidOperation, color)
	}
	pt := p.grid.PointAt(idx)
	if pt.State != Empty {
		return nil, fmt.Errorf("%w: point %s is already occupied", errors.ErrInvalidOperation, pt.Vertex)
	}

	former := p.detach(idx)

	pt.State = color
	r := p.newRegion(color)
	r.points = append(r.points, idx)
	pt.Region = r.id

	var buf [4]int
	for _, nb := range p.grid.Neighbors(idx, &buf) {
		nr := p.RegionOf(nb)
		if nr.state == color && nr.id != r.id {
			r = p.merge(r, nr)
		}
	}

	if former != nil {
		p.split(former)
	}
	p.invalidateAround(idx)

	var captured []*Region
	for _, id := range r.AdjacentRegions() {
		nr := p.regions[id]
		if nr != nil && nr.state == color.Opponent() && nr.Liberties() == 0 {
			captured = append(captured, nr)
		}
	}
	return captured, nil
}

// RemoveStones опустошает занятые точки, вливает их в смежные пустые регионы
// и раскалывает бывшие регионы камней, если снятие их рассоединило.
func (p *Partition) RemoveStones(idxs []int) error {
	for _, idx := range idxs {
		if idx < 0 || idx >= p.grid.NumPoints() {
			return fmt.Errorf("%w: point index %d out of range", errors.ErrInvalidOperation, idx)
		}
		if p.grid.PointAt(idx).State == Empty {
			return fmt.Errorf("%w: point %s is not occupied", errors.ErrInvalidOperation, p.grid.PointAt(idx).Vertex)
		}
	}

	former := make(map[RegionID]*Region)
	for _, idx := range idxs {
		if r := p.detach(idx); r != nil {
			former[r.id] = r
		}
		pt := p.grid.PointAt(idx)
		pt.State = Empty
		nr := p.newRegion(Empty)
		nr.points = append(nr.points, idx)
		pt.Region = nr.id
	}

	var buf [4]int
	for _, idx := range idxs {
		r := p.RegionOf(idx)
		for _, nb := range p.grid.Neighbors(idx, &buf) {
			nr := p.RegionOf(nb)
			if nr.state == Empty && nr.id != r.id {
				r = p.merge(r, nr)
			}
		}
	}

	for id, r := range former {
		if _, alive := p.regions[id]; alive {
			p.split(r)
		}
	}
	for _, idx := range idxs {
		p.invalidateAround(idx)
	}
	return nil
}

func (p *Partition) newRegion(state State) *Region {
	r := &Region{
		id:    p.nextID,
		state: state,
		part:  p,
	}
	p.nextID++
	p.regions[r.id] = r
	return r
}

// detach изымает точку из её региона. Возвращает регион, если тот пережил
// изъятие и нуждается в проверке связности, иначе nil.
func (p *Partition) detach(idx int) *Region {
	pt := p.grid.PointAt(idx)
	r, ok := p.regions[pt.Region]
	if !ok {
		return nil
	}
	for i, pi := range r.points {
		if pi == idx {
			r.points[i] = r.points[len(r.points)-1]
			r.points = r.points[:len(r.points)-1]
			break
		}
	}
	pt.Region = NoRegion
	r.invalidate()
	if len(r.points) == 0 {
		delete(p.regions, r.id)
		return nil
	}
	return r
}

// merge объединяет два региона одного состояния. Выживает больший; при
// равенстве — первый аргумент (регион, уже содержащий мутируемую точку).
func (p *Partition) merge(a, b *Region) *Region {
	if len(b.points) > len(a.points) {
		a, b = b, a
	}
	// Хэндл поглощаемого региона умирает: соседи по всему его периметру
	// держат его в кэше смежности и обязаны пересчитаться.
	var buf [4]int
	for _, idx := range b.points {
		for _, nb := range p.grid.Neighbors(idx, &buf) {
			if nr, ok := p.regions[p.grid.PointAt(nb).Region]; ok && nr != b {
				nr.invalidate()
			}
		}
	}
	for _, idx := range b.points {
		p.grid.PointAt(idx).Region = a.id
	}
	a.points = append(a.points, b.points...)
	a.invalidate()
	delete(p.regions, b.id)
	return a
}

// split проверяет, остался ли регион одной компонентой связности, и, если
// нет, материализует по новому региону на каждую лишнюю компоненту. Это
// дорогая операция (O(размера региона)) и запускается только после изъятия
// точек, чистое добавление никогда не рассоединяет регион.
func (p *Partition) split(r *Region) {
	if len(r.points) == 0 {
		return
	}

	visited := make(map[int]bool, len(r.points))
	var components [][]int
	var buf [4]int
	for _, start := range r.points {
		if visited[start] {
			continue
		}
		var comp []int
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, idx)
			for _, nb := range p.grid.Neighbors(idx, &buf) {
				if !visited[nb] && p.grid.PointAt(nb).Region == r.id {
					visited[nb] = true
					stack = append(stack, nb)
				}
			}
		}
		components = append(components, comp)
	}

	if len(components) == 1 {
		return
	}

	// Первая компонента остаётся в исходном регионе, остальные получают новые.
	r.points = components[0]
	r.invalidate()
	for _, comp := range components[1:] {
		nr := p.newRegion(r.state)
		nr.points = comp
		for _, idx := range comp {
			p.grid.PointAt(idx).Region = nr.id
		}
		nr.invalidate()
	}
}

// invalidateAround помечает устаревшими кэши региона точки и всех смежных с
// ней регионов: смена занятости точки меняет их дыхания и смежность.
func (p *Partition) invalidateAround(idx int) {
	if r := p.RegionOf(idx); r != nil {
		r.invalidate()
	}
	var buf [4]int
	for _, nb := range p.grid.Neighbors(idx, &buf) {
		if r := p.RegionOf(nb); r != nil {
			r.invalidate()
		}
	}
}
