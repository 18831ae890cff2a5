package database

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hendrawan/sitevault/internal/config"
)

func TestMySQLDumper(t *testing.T) {
	Convey("Given a MySQLDumper", t, func() {
		dumper := NewMySQL(&config.DatabaseConfig{
			Host:     "db.internal",
			Port:     3306,
			User:     "wp",
			Password: "secret",
			Name:     "wordpress",
		})

		Convey("dumpArgs", func() {
			args := dumper.dumpArgs("/tmp/database_backup.sql")

			Convey("It should pass credentials and write to the result file", func() {
				So(args, ShouldContain, "--host=db.internal")
				So(args, ShouldContain, "--port=3306")
				So(args, ShouldContain, "--user=wp")
				So(args, ShouldContain, "--password=secret")
				So(args, ShouldContain, "--single-transaction")
				So(args, ShouldContain, "--result-file=/tmp/database_backup.sql")
			})

			Convey("The database name should be the final argument", func() {
				So(args[len(args)-1], ShouldEqual, "wordpress")
			})
		})
	})
}
