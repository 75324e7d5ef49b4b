package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/akademik/akademik/internal/app/models/dto"
	"github.com/akademik/akademik/internal/client"
	"github.com/akademik/akademik/internal/client/session"
	"github.com/akademik/akademik/internal/pkg/logger"
	"github.com/akademik/akademik/internal/ui"
	"github.com/urfave/cli/v2"
)

var errNotLoggedIn = errors.New("oturum bulunamadı, önce giriş yapın: akademik login")

type env struct {
	store  *session.FileStore
	api    *client.Client
	pages  *ui.Pages
	render *ui.Renderer
}

func store(c *cli.Context) (*session.FileStore, error) {
	path := c.String("session")
	if path == "" {
		p, err := session.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return session.NewFileStore(path), nil
}

func newClient(c *cli.Context, token string) *client.Client {
	return client.New(c.String("api"),
		client.WithToken(token),
		client.WithLogger(logger.Default()),
	)
}

// load restores the session and builds the page loaders of its user
func load(c *cli.Context) (*env, error) {
	st, err := store(c)
	if err != nil {
		return nil, err
	}
	sess, err := st.Load()
	if errors.Is(err, session.ErrNoSession) {
		return nil, errNotLoggedIn
	}
	if err != nil {
		return nil, err
	}

	api := newClient(c, sess.Token)
	return &env{
		store:  st,
		api:    api,
		pages:  ui.NewPages(api, sess.User),
		render: ui.NewRenderer(os.Stdout, !c.Bool("no-color")),
	}, nil
}

func argID(c *cli.Context, i int, name string) (int64, error) {
	raw := c.Args().Get(i)
	if raw == "" {
		return 0, fmt.Errorf("%s gerekli", name)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("geçersiz %s: %s", name, raw)
	}
	return n, nil
}

// action wraps a command that needs a logged in user
func action(fn func(c *cli.Context, e *env) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		e, err := load(c)
		if err != nil {
			return err
		}
		return fn(c, e)
	}
}

func offeringAction(fn func(c *cli.Context, e *env, offeringID int64) error) cli.ActionFunc {
	return action(func(c *cli.Context, e *env) error {
		offeringID, err := argID(c, 0, "ders (offering) numarası")
		if err != nil {
			return err
		}
		return fn(c, e, offeringID)
	})
}

func exportTo(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("%s dosyasına aktarıldı.\n", path)
	return nil
}

var termFlag = &cli.StringFlag{Name: "term", Usage: "dönem", Value: models.DefaultTerm}

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "health",
			Usage: "gateway durumunu gösterir",
			Action: func(c *cli.Context) error {
				h, err := newClient(c, "").Health(c.Context)
				if err != nil {
					return err
				}
				fmt.Printf("%s %s\n", h.Status, h.Timestamp)
				return nil
			},
		},
		{
			Name:  "login",
			Usage: "giriş yapar ve oturumu saklar",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
				&cli.StringFlag{Name: "password", Aliases: []string{"p"}, EnvVars: []string{"AKADEMIK_PASSWORD"}},
			},
			Action: func(c *cli.Context) error {
				form := ui.LoginForm{Username: c.String("username"), Password: c.String("password")}
				if err := form.Validate(); err != nil {
					return err
				}
				user, token, err := newClient(c, "").Login(c.Context, form.Username, form.Password)
				if err != nil {
					return err
				}
				st, err := store(c)
				if err != nil {
					return err
				}
				if err := st.Save(&session.Session{User: *user, Token: token}); err != nil {
					return err
				}
				return ui.NewRenderer(os.Stdout, !c.Bool("no-color")).Navigation(*user)
			},
		},
		{
			Name:  "logout",
			Usage: "oturumu kapatır",
			Action: func(c *cli.Context) error {
				st, err := store(c)
				if err != nil {
					return err
				}
				return st.Clear()
			},
		},
		{
			Name:  "whoami",
			Usage: "oturumdaki kullanıcıyı ve menüsünü gösterir",
			Action: action(func(c *cli.Context, e *env) error {
				return e.render.Navigation(e.pages.User())
			}),
		},
		{
			Name:  "dashboard",
			Usage: "ana sayfa",
			Action: action(func(c *cli.Context, e *env) error {
				page, err := e.pages.Dashboard(c.Context)
				if err != nil {
					return err
				}
				return e.render.Dashboard(page)
			}),
		},
		{
			Name:  "catalog",
			Usage: "ders kataloğu",
			Flags: []cli.Flag{termFlag},
			Action: action(func(c *cli.Context, e *env) error {
				page, err := e.pages.Catalog(c.Context, c.String("term"))
				if err != nil {
					return err
				}
				return e.render.Courses(page)
			}),
		},
		{
			Name:      "enroll",
			Usage:     "derse kayıt olur",
			ArgsUsage: "<offeringId>",
			Flags:     []cli.Flag{termFlag},
			Action: offeringAction(func(c *cli.Context, e *env, offeringID int64) error {
				page, err := e.pages.Enroll(c.Context, offeringID, c.String("term"))
				if err != nil {
					return err
				}
				fmt.Println("Derse kayıt başarılı!")
				return e.render.Courses(page)
			}),
		},
		{
			Name:  "schedule",
			Usage: "ders programım",
			Flags: []cli.Flag{termFlag},
			Action: action(func(c *cli.Context, e *env) error {
				page, err := e.pages.MySchedule(c.Context, c.String("term"))
				if err != nil {
					return err
				}
				return e.render.Schedule(page)
			}),
		},
		{
			Name:      "drop",
			Usage:     "ders kaydını bırakır",
			ArgsUsage: "<enrollmentId>",
			Flags:     []cli.Flag{termFlag, &cli.StringFlag{Name: "reason"}},
			Action: action(func(c *cli.Context, e *env) error {
				enrollmentID, err := argID(c, 0, "kayıt numarası")
				if err != nil {
					return err
				}
				page, err := e.pages.Drop(c.Context, enrollmentID, c.String("reason"), c.String("term"))
				if err != nil {
					return err
				}
				return e.render.Schedule(page)
			}),
		},
		{
			Name:  "transcript",
			Usage: "transkript",
			Action: action(func(c *cli.Context, e *env) error {
				entries, err := e.pages.Transcript(c.Context)
				if err != nil {
					return err
				}
				return e.render.Transcript(entries)
			}),
		},
		{
			Name:      "my-attendance",
			Usage:     "bir dersteki devam durumum",
			ArgsUsage: "<offeringId>",
			Action: offeringAction(func(c *cli.Context, e *env, offeringID int64) error {
				page, err := e.pages.MyAttendance(c.Context, offeringID)
				if err != nil {
					return err
				}
				return e.render.MyAttendance(page)
			}),
		},
		{
			Name:  "my-courses",
			Usage: "verdiğim dersler",
			Flags: []cli.Flag{termFlag},
			Action: action(func(c *cli.Context, e *env) error {
				page, err := e.pages.MyCourses(c.Context, c.String("term"))
				if err != nil {
					return err
				}
				return e.render.Courses(page)
			}),
		},
		{
			Name:      "students",
			Usage:     "derse kayıtlı öğrenciler",
			ArgsUsage: "<offeringId>",
			Action: offeringAction(func(c *cli.Context, e *env, offeringID int64) error {
				page, err := e.pages.Students(c.Context, offeringID)
				if err != nil {
					return err
				}
				return e.render.Students(page)
			}),
		},
		{
			Name:      "department",
			Usage:     "bölümün öğrencileri",
			ArgsUsage: "<departmentId>",
			Action: action(func(c *cli.Context, e *env) error {
				departmentID, err := argID(c, 0, "bölüm numarası")
				if err != nil {
					return err
				}
				students, err := e.pages.DepartmentStudents(c.Context, departmentID)
				if err != nil {
					return err
				}
				return e.render.DepartmentStudents(students)
			}),
		},
		gradebookCommand(),
		attendanceCommand(),
		{
			Name:  "notifications",
			Usage: "bildirimler",
			Action: action(func(c *cli.Context, e *env) error {
				list, err := e.pages.Notifications(c.Context)
				if err != nil {
					return err
				}
				return e.render.Notifications(list)
			}),
		},
		{
			Name:      "read",
			Usage:     "bildirimi okundu işaretler",
			ArgsUsage: "<notificationId>",
			Action: action(func(c *cli.Context, e *env) error {
				notificationID, err := argID(c, 0, "bildirim numarası")
				if err != nil {
					return err
				}
				list, err := e.pages.MarkRead(c.Context, notificationID)
				if err != nil {
					return err
				}
				return e.render.Notifications(list)
			}),
		},
		{
			Name:  "audit",
			Usage: "işlem kayıtları",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "from"},
				&cli.StringFlag{Name: "to"},
				&cli.StringFlag{Name: "action"},
				&cli.StringFlag{Name: "table"},
			},
			Action: action(func(c *cli.Context, e *env) error {
				logs, err := e.pages.AuditLog(c.Context, client.AuditFilter{
					DateFrom:   c.String("from"),
					DateTo:     c.String("to"),
					ActionType: c.String("action"),
					TableName:  c.String("table"),
				})
				if err != nil {
					return err
				}
				return e.render.AuditLog(logs)
			}),
		},
		userCommand(),
	}
}

func gradebookCommand() *cli.Command {
	return &cli.Command{
		Name:      "gradebook",
		Usage:     "not girişi",
		ArgsUsage: "<offeringId>",
		Flags:     []cli.Flag{&cli.StringFlag{Name: "export", Usage: "xlsx dosyasına aktar"}},
		Action: offeringAction(func(c *cli.Context, e *env, offeringID int64) error {
			page, err := e.pages.Gradebook(c.Context, offeringID)
			if err != nil {
				return err
			}
			if path := c.String("export"); path != "" {
				return exportTo(path, func(f *os.File) error { return ui.ExportGradebook(f, page) })
			}
			return e.render.Gradebook(page)
		}),
		Subcommands: []*cli.Command{
			{
				Name:      "grade",
				Usage:     "not kaydeder",
				ArgsUsage: "<offeringId> <enrollmentId> <componentId> <score>",
				Action: offeringAction(func(c *cli.Context, e *env, offeringID int64) error {
					enrollmentID, err := argID(c, 1, "kayıt numarası")
					if err != nil {
						return err
					}
					componentID, err := argID(c, 2, "bileşen numarası")
					if err != nil {
						return err
					}
					page, err := e.pages.SaveGrade(c.Context, offeringID, ui.GradeForm{
						EnrollmentID: enrollmentID,
						ComponentID:  componentID,
						Score:        c.Args().Get(3),
					})
					if err != nil {
						return err
					}
					fmt.Println("Not kaydedildi.")
					return e.render.Gradebook(page)
				}),
			},
			{
				Name:      "component",
				Usage:     "not bileşeni ekler",
				ArgsUsage: "<offeringId>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "weight"},
					&cli.BoolFlag{Name: "optional", Usage: "zorunlu olmayan bileşen"},
				},
				Action: offeringAction(func(c *cli.Context, e *env, offeringID int64) error {
					page, err := e.pages.AddComponent(c.Context, offeringID, ui.ComponentForm{
						Name:     c.String("name"),
						Weight:   c.String("weight"),
						Optional: c.Bool("optional"),
					})
					if err != nil {
						return err
					}
					fmt.Println("Bileşen eklendi.")
					return e.render.Gradebook(page)
				}),
			},
		},
	}
}

// parseMarks reads studentId=Status pairs
func parseMarks(values []string) (map[int64]models.AttendanceStatus, error) {
	marks := make(map[int64]models.AttendanceStatus, len(values))
	for _, v := range values {
		id, status, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("geçersiz yoklama girdisi: %s", v)
		}
		studentID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("geçersiz öğrenci numarası: %s", id)
		}
		st, err := parseStatus(status)
		if err != nil {
			return nil, err
		}
		marks[studentID] = st
	}
	return marks, nil
}

func parseStatus(s string) (models.AttendanceStatus, error) {
	for _, st := range models.AttendanceStatuses {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("geçersiz yoklama durumu: %s", s)
}

func attendanceCommand() *cli.Command {
	return &cli.Command{
		Name:      "attendance",
		Usage:     "yoklama",
		ArgsUsage: "<offeringId>",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "session", Usage: "oturum numarası (varsayılan: ilk yoklaması alınmamış oturum)"},
			&cli.StringFlag{Name: "all", Usage: "tüm öğrencilere durum ver"},
			&cli.StringSliceFlag{Name: "set", Usage: "studentId=Status"},
			&cli.BoolFlag{Name: "save", Usage: "yoklamayı kaydet"},
		},
		Action: offeringAction(func(c *cli.Context, e *env, offeringID int64) error {
			page, err := e.pages.Attendance(c.Context, offeringID, c.Int64("session"))
			if err != nil {
				return err
			}

			if all := c.String("all"); all != "" {
				status, err := parseStatus(all)
				if err != nil {
					return err
				}
				page.SetAll(status)
			}
			marks, err := parseMarks(c.StringSlice("set"))
			if err != nil {
				return err
			}
			for studentID, status := range marks {
				page.SetStatus(studentID, status)
			}

			if c.Bool("save") {
				recorded, reloaded, err := e.pages.SaveAttendance(c.Context, page)
				if err != nil {
					return err
				}
				fmt.Printf("%d öğrenci için yoklama kaydedildi.\n", recorded)
				page = reloaded
			}
			return e.render.Attendance(page)
		}),
		Subcommands: []*cli.Command{
			{
				Name:      "summary",
				Usage:     "devam özeti",
				ArgsUsage: "<offeringId>",
				Flags:     []cli.Flag{&cli.StringFlag{Name: "export", Usage: "xlsx dosyasına aktar"}},
				Action: offeringAction(func(c *cli.Context, e *env, offeringID int64) error {
					rows, err := e.pages.AttendanceSummary(c.Context, offeringID)
					if err != nil {
						return err
					}
					if path := c.String("export"); path != "" {
						return exportTo(path, func(f *os.File) error { return ui.ExportAttendanceSummary(f, rows) })
					}
					return e.render.AttendanceSummary(rows)
				}),
			},
		},
	}
}

func userCommand() *cli.Command {
	admin := func(fn func(c *cli.Context, e *env) error) cli.ActionFunc {
		return action(func(c *cli.Context, e *env) error {
			if !ui.Allowed(e.pages.User().RoleName, ui.PageUsers) {
				return ui.ErrPageNotAllowed
			}
			return fn(c, e)
		})
	}

	return &cli.Command{
		Name:  "user",
		Usage: "kullanıcı işlemleri",
		Subcommands: []*cli.Command{
			{
				Name:  "register",
				Usage: "kullanıcı oluşturur",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "role", Required: true},
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "phone"},
				},
				Action: admin(func(c *cli.Context, e *env) error {
					req := dto.RegisterRequest{
						RoleName: dto.NewParam(c.String("role")),
						Username: dto.NewParam(c.String("username")),
						Password: dto.NewParam(c.String("password")),
						Email:    dto.NewParam(c.String("email")),
					}
					if phone := c.String("phone"); phone != "" {
						req.Phone = dto.NewParam(phone)
					}
					userID, err := e.api.Register(c.Context, req)
					if err != nil {
						return err
					}
					if userID != nil {
						fmt.Printf("Kullanıcı oluşturuldu: %d\n", *userID)
					}
					return nil
				}),
			},
			{
				Name:      "contact",
				Usage:     "iletişim bilgilerini günceller",
				ArgsUsage: "<userId>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "phone"},
				},
				Action: admin(func(c *cli.Context, e *env) error {
					userID, err := argID(c, 0, "kullanıcı numarası")
					if err != nil {
						return err
					}
					return e.api.UpdateContact(c.Context, userID, c.String("email"), c.String("phone"))
				}),
			},
			{
				Name:      "deactivate",
				Usage:     "kullanıcıyı pasifleştirir",
				ArgsUsage: "<userId>",
				Flags:     []cli.Flag{&cli.StringFlag{Name: "reason"}},
				Action: admin(func(c *cli.Context, e *env) error {
					userID, err := argID(c, 0, "kullanıcı numarası")
					if err != nil {
						return err
					}
					return e.api.Deactivate(c.Context, userID, c.String("reason"))
				}),
			},
		},
	}
}
