// Package docs registers the swagger specification of the gateway API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "User login",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LoginResponse"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Giriş başarısız",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/auth/register": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Create user",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/auth/contact": {
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Update user contact",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateContactRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/auth/deactivate": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Deactivate user",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.DeactivateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/student/register": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "student"
                ],
                "summary": "Register student",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterStudentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/student/academic/register": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "student"
                ],
                "summary": "Register academic",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RegisterAcademicRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/student/advisor": {
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "student"
                ],
                "summary": "Assign advisor",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AssignAdvisorRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/student/by-department/{departmentId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "student"
                ],
                "summary": "List students by department",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "departmentId",
                        "name": "departmentId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/course": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "course"
                ],
                "summary": "Create course",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateCourseRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/course/{courseId}": {
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "course"
                ],
                "summary": "Update course",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "courseId",
                        "name": "courseId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateCourseRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "course"
                ],
                "summary": "Delete course",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "courseId",
                        "name": "courseId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/course/offering": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "course"
                ],
                "summary": "Open course offering",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.OpenOfferingRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/course/catalog": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "course"
                ],
                "summary": "Course catalog",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "programId",
                        "name": "programId",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "term",
                        "name": "term",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/course/enroll": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "course"
                ],
                "summary": "Enroll student",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.EnrollRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/course/drop": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "course"
                ],
                "summary": "Drop enrollment",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.DropRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/course/schedule/{studentId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "course"
                ],
                "summary": "Student schedule",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "studentId",
                        "name": "studentId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "term",
                        "name": "term",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/course/academic-courses/{academicId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "course"
                ],
                "summary": "Academic courses",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "academicId",
                        "name": "academicId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "term",
                        "name": "term",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/course/enrolled-students/{offeringId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "course"
                ],
                "summary": "Enrolled students",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "offeringId",
                        "name": "offeringId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/course/generate-sessions": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "course"
                ],
                "summary": "Generate class sessions",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.GenerateSessionsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/grading/component": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grading"
                ],
                "summary": "Define grade component",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.DefineComponentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/grading/record": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grading"
                ],
                "summary": "Record grade",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RecordGradeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/grading/gradebook/{offeringId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grading"
                ],
                "summary": "Grade book",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "offeringId",
                        "name": "offeringId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/grading/transcript/{studentId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grading"
                ],
                "summary": "Student transcript",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "studentId",
                        "name": "studentId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/grading/approve": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grading"
                ],
                "summary": "Approve final grades",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ApproveGradesRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/grading/components/{offeringId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grading"
                ],
                "summary": "Grade components",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "offeringId",
                        "name": "offeringId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/grading/student-grades/{offeringId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "grading"
                ],
                "summary": "Student grades",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "offeringId",
                        "name": "offeringId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/attendance/policy": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "attendance"
                ],
                "summary": "Define attendance policy",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AttendancePolicyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/attendance/record": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "attendance"
                ],
                "summary": "Record attendance",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RecordAttendanceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/attendance/summary/{offeringId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "attendance"
                ],
                "summary": "Attendance summary",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "offeringId",
                        "name": "offeringId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/attendance/detail/{studentId}/{offeringId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "attendance"
                ],
                "summary": "Student attendance detail",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "studentId",
                        "name": "studentId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "offeringId",
                        "name": "offeringId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/attendance/sessions/{offeringId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "attendance"
                ],
                "summary": "Class sessions",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "offeringId",
                        "name": "offeringId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/attendance/session/{sessionId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "attendance"
                ],
                "summary": "Session attendance",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "sessionId",
                        "name": "sessionId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/attendance/bulk-record": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "attendance"
                ],
                "summary": "Bulk record attendance",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.BulkAttendanceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reporting/dashboard/{userId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reporting"
                ],
                "summary": "Dashboard statistics",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "userId",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reporting/notifications/{userId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reporting"
                ],
                "summary": "List notifications",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "userId",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reporting/notifications/{notificationId}/read": {
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reporting"
                ],
                "summary": "Mark notification read",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "notificationId",
                        "name": "notificationId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reporting/audit": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reporting"
                ],
                "summary": "Search audit log",
                "parameters": [
                    {
                        "type": "string",
                        "description": "dateFrom",
                        "name": "dateFrom",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "dateTo",
                        "name": "dateTo",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "actionType",
                        "name": "actionType",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "tableName",
                        "name": "tableName",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Database error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string",
                    "example": "ayse.yilmaz"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/models.User"
                }
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "UserID": {
                    "type": "integer"
                },
                "Username": {
                    "type": "string"
                },
                "RoleName": {
                    "type": "string",
                    "example": "Student"
                },
                "Email": {
                    "type": "string"
                },
                "Phone": {
                    "type": "string"
                },
                "FullName": {
                    "type": "string"
                }
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "properties": {
                "roleName": {
                    "type": "string",
                    "example": "Admin"
                },
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateContactRequest": {
            "type": "object",
            "properties": {
                "userId": {
                    "type": "integer"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "dto.DeactivateRequest": {
            "type": "object",
            "properties": {
                "userId": {
                    "type": "integer"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "dto.RegisterStudentRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "studentNumber": {
                    "type": "string"
                },
                "nationalId": {
                    "type": "string"
                },
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "birthDate": {
                    "type": "string",
                    "example": "2004-05-17"
                },
                "gender": {
                    "type": "string",
                    "example": "F"
                },
                "departmentId": {
                    "type": "integer"
                },
                "programId": {
                    "type": "integer"
                },
                "advisorId": {
                    "type": "integer"
                },
                "enrollmentYear": {
                    "type": "integer"
                }
            }
        },
        "dto.RegisterAcademicRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "departmentId": {
                    "type": "integer"
                },
                "office": {
                    "type": "string"
                },
                "phoneExtension": {
                    "type": "string"
                }
            }
        },
        "dto.AssignAdvisorRequest": {
            "type": "object",
            "properties": {
                "studentId": {
                    "type": "integer"
                },
                "advisorId": {
                    "type": "integer"
                }
            }
        },
        "dto.CreateCourseRequest": {
            "type": "object",
            "properties": {
                "courseCode": {
                    "type": "string",
                    "example": "BIL101"
                },
                "courseName": {
                    "type": "string"
                },
                "programId": {
                    "type": "integer"
                },
                "credit": {
                    "type": "number"
                },
                "ects": {
                    "type": "number"
                },
                "semesterOffered": {
                    "type": "integer"
                }
            }
        },
        "dto.UpdateCourseRequest": {
            "type": "object",
            "properties": {
                "courseName": {
                    "type": "string"
                },
                "credit": {
                    "type": "number"
                },
                "ects": {
                    "type": "number"
                },
                "semesterOffered": {
                    "type": "integer"
                }
            }
        },
        "dto.OpenOfferingRequest": {
            "type": "object",
            "properties": {
                "courseId": {
                    "type": "integer"
                },
                "academicId": {
                    "type": "integer"
                },
                "term": {
                    "type": "string",
                    "example": "2025-FALL"
                },
                "section": {
                    "type": "string",
                    "example": "01"
                },
                "capacity": {
                    "type": "integer"
                },
                "scheduleJSON": {
                    "type": "string"
                }
            }
        },
        "dto.EnrollRequest": {
            "type": "object",
            "properties": {
                "offeringId": {
                    "type": "integer"
                },
                "studentId": {
                    "type": "integer"
                }
            }
        },
        "dto.DropRequest": {
            "type": "object",
            "properties": {
                "enrollmentId": {
                    "type": "integer"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "dto.GenerateSessionsRequest": {
            "type": "object",
            "properties": {
                "offeringId": {
                    "type": "integer"
                },
                "startDate": {
                    "type": "string",
                    "example": "2025-09-15"
                },
                "dayOfWeek": {
                    "type": "integer"
                },
                "startTime": {
                    "type": "string",
                    "example": "09:00"
                },
                "endTime": {
                    "type": "string",
                    "example": "11:00"
                },
                "sessionType": {
                    "type": "string",
                    "example": "Lecture"
                },
                "location": {
                    "type": "string"
                },
                "weekCount": {
                    "type": "integer"
                }
            }
        },
        "dto.DefineComponentRequest": {
            "type": "object",
            "properties": {
                "offeringId": {
                    "type": "integer"
                },
                "componentName": {
                    "type": "string",
                    "example": "Vize"
                },
                "weightPercent": {
                    "type": "number"
                },
                "isMandatory": {
                    "type": "boolean"
                }
            }
        },
        "dto.RecordGradeRequest": {
            "type": "object",
            "properties": {
                "enrollmentId": {
                    "type": "integer"
                },
                "componentId": {
                    "type": "integer"
                },
                "score": {
                    "type": "number"
                },
                "gradedBy": {
                    "type": "integer"
                }
            }
        },
        "dto.ApproveGradesRequest": {
            "type": "object",
            "properties": {
                "offeringId": {
                    "type": "integer"
                },
                "academicId": {
                    "type": "integer"
                }
            }
        },
        "dto.AttendancePolicyRequest": {
            "type": "object",
            "properties": {
                "offeringId": {
                    "type": "integer"
                },
                "maxAbsencePercent": {
                    "type": "number"
                },
                "warningThresholdPercent": {
                    "type": "number"
                },
                "autoFailPercent": {
                    "type": "number"
                }
            }
        },
        "dto.RecordAttendanceRequest": {
            "type": "object",
            "properties": {
                "sessionId": {
                    "type": "integer"
                },
                "studentId": {
                    "type": "integer"
                },
                "status": {
                    "type": "string",
                    "example": "Present"
                },
                "recordedBy": {
                    "type": "integer"
                }
            }
        },
        "dto.BulkAttendanceRequest": {
            "type": "object",
            "properties": {
                "sessionId": {
                    "type": "integer"
                },
                "recordedBy": {
                    "type": "integer"
                },
                "attendanceData": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "studentId": {
                                "type": "integer"
                            },
                            "status": {
                                "type": "string",
                                "example": "Present"
                            }
                        }
                    }
                }
            }
        },
        "dto.SuccessResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": false
                },
                "message": {
                    "type": "string",
                    "example": "Kontenjan dolu"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "ok"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Session token returned by /auth/login",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Akademik API",
	Description:      "Academic records gateway. Every route calls one stored procedure.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
