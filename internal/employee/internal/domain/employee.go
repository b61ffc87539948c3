package domain

// Availability 员工当前的可用状态
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityBusy        Availability = "busy"
	AvailabilityUnavailable Availability = "unavailable"
)

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return true
	default:
		return false
	}
}

func (a Availability) String() string {
	return string(a)
}

// Skill 员工技能，按名字去重，等级 1-10
type Skill struct {
	Name     string
	Level    int
	Category string
}

const (
	SkillLevelMin = 1
	SkillLevelMax = 10
)

// DefaultSkillLevel 前端只传技能名字的时候使用的默认等级
const DefaultSkillLevel = 5

// ProjectRecord 员工侧的项目参与记录，和 project 模块的分配列表互为镜像
type ProjectRecord struct {
	ProjectID   int64
	Role        string
	StartDate   int64
	EndDate     int64
	Performance int
	Active      bool
}

type Employee struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Position   string
	Department string
	HireDate   int64
	// Password 是 bcrypt 之后的密码，永远不会出现在序列化结果里
	Password         string
	Skills           []Skill
	PerformanceScore int
	Projects         []ProjectRecord
	Availability     Availability
	Avatar           string
	Bio              string
	Strengths        []string
	Weaknesses       []string
	Active           bool
	Ctime            int64
	Utime            int64
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// ActiveProjects 当前仍在进行中的项目数
func (e Employee) ActiveProjects() int {
	var cnt int
	for _, p := range e.Projects {
		if p.Active {
			cnt++
		}
	}
	return cnt
}

// NormalizeSkills 把技能列表规整成按名字唯一的形式。
// 名字重复时后写的覆盖先写的，但保留第一次出现的位置。
func NormalizeSkills(skills []Skill) []Skill {
	res := make([]Skill, 0, len(skills))
	pos := make(map[string]int, len(skills))
	for _, sk := range skills {
		if idx, ok := pos[sk.Name]; ok {
			res[idx] = sk
			continue
		}
		pos[sk.Name] = len(res)
		res = append(res, sk)
	}
	return res
}
