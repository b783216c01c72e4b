// Generate from the repository root:
//
//	protoc --go_out=. --go_opt=module=github.com/priya-sndrs/InstSys-CaseStudy-sub000 \
//	       --go-grpc_out=. --go-grpc_opt=module=github.com/priya-sndrs/InstSys-CaseStudy-sub000 \
//	       proto/instsys/v1/instsys.proto

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: instsys/v1/instsys.proto

package instsysv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Student struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StudentNo     string                 `protobuf:"bytes,2,opt,name=student_no,json=studentNo,proto3" json:"student_no,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Program       string                 `protobuf:"bytes,4,opt,name=program,proto3" json:"program,omitempty"`
	YearLevel     string                 `protobuf:"bytes,5,opt,name=year_level,json=yearLevel,proto3" json:"year_level,omitempty"`
	Section       string                 `protobuf:"bytes,6,opt,name=section,proto3" json:"section,omitempty"`
	Semester      string                 `protobuf:"bytes,7,opt,name=semester,proto3" json:"semester,omitempty"`
	SchoolYear    string                 `protobuf:"bytes,8,opt,name=school_year,json=schoolYear,proto3" json:"school_year,omitempty"`
	Adviser       string                 `protobuf:"bytes,9,opt,name=adviser,proto3" json:"adviser,omitempty"`
	RecordText    string                 `protobuf:"bytes,10,opt,name=record_text,json=recordText,proto3" json:"record_text,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Student) Reset() {
	*x = Student{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Student) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Student) ProtoMessage() {}

func (x *Student) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Student.ProtoReflect.Descriptor instead.
func (*Student) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{0}
}

func (x *Student) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Student) GetStudentNo() string {
	if x != nil {
		return x.StudentNo
	}
	return ""
}

func (x *Student) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Student) GetProgram() string {
	if x != nil {
		return x.Program
	}
	return ""
}

func (x *Student) GetYearLevel() string {
	if x != nil {
		return x.YearLevel
	}
	return ""
}

func (x *Student) GetSection() string {
	if x != nil {
		return x.Section
	}
	return ""
}

func (x *Student) GetSemester() string {
	if x != nil {
		return x.Semester
	}
	return ""
}

func (x *Student) GetSchoolYear() string {
	if x != nil {
		return x.SchoolYear
	}
	return ""
}

func (x *Student) GetAdviser() string {
	if x != nil {
		return x.Adviser
	}
	return ""
}

func (x *Student) GetRecordText() string {
	if x != nil {
		return x.RecordText
	}
	return ""
}

func (x *Student) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Student) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type SubjectEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Units         string                 `protobuf:"bytes,3,opt,name=units,proto3" json:"units,omitempty"`
	Room          string                 `protobuf:"bytes,4,opt,name=room,proto3" json:"room,omitempty"`
	Day           string                 `protobuf:"bytes,5,opt,name=day,proto3" json:"day,omitempty"`
	TimeStart     string                 `protobuf:"bytes,6,opt,name=time_start,json=timeStart,proto3" json:"time_start,omitempty"`
	TimeEnd       string                 `protobuf:"bytes,7,opt,name=time_end,json=timeEnd,proto3" json:"time_end,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubjectEntry) Reset() {
	*x = SubjectEntry{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubjectEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubjectEntry) ProtoMessage() {}

func (x *SubjectEntry) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubjectEntry.ProtoReflect.Descriptor instead.
func (*SubjectEntry) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{1}
}

func (x *SubjectEntry) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *SubjectEntry) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *SubjectEntry) GetUnits() string {
	if x != nil {
		return x.Units
	}
	return ""
}

func (x *SubjectEntry) GetRoom() string {
	if x != nil {
		return x.Room
	}
	return ""
}

func (x *SubjectEntry) GetDay() string {
	if x != nil {
		return x.Day
	}
	return ""
}

func (x *SubjectEntry) GetTimeStart() string {
	if x != nil {
		return x.TimeStart
	}
	return ""
}

func (x *SubjectEntry) GetTimeEnd() string {
	if x != nil {
		return x.TimeEnd
	}
	return ""
}

type Personnel struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Variant       string                 `protobuf:"bytes,3,opt,name=variant,proto3" json:"variant,omitempty"`
	Position      string                 `protobuf:"bytes,4,opt,name=position,proto3" json:"position,omitempty"`
	Department    string                 `protobuf:"bytes,5,opt,name=department,proto3" json:"department,omitempty"`
	Email         string                 `protobuf:"bytes,6,opt,name=email,proto3" json:"email,omitempty"`
	Phone         string                 `protobuf:"bytes,7,opt,name=phone,proto3" json:"phone,omitempty"`
	SssNo         string                 `protobuf:"bytes,8,opt,name=sss_no,json=sssNo,proto3" json:"sss_no,omitempty"`
	PhilhealthNo  string                 `protobuf:"bytes,9,opt,name=philhealth_no,json=philhealthNo,proto3" json:"philhealth_no,omitempty"`
	Birthdate     string                 `protobuf:"bytes,10,opt,name=birthdate,proto3" json:"birthdate,omitempty"`
	Address       string                 `protobuf:"bytes,11,opt,name=address,proto3" json:"address,omitempty"`
	Employment    string                 `protobuf:"bytes,12,opt,name=employment,proto3" json:"employment,omitempty"`
	RecordText    string                 `protobuf:"bytes,13,opt,name=record_text,json=recordText,proto3" json:"record_text,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,14,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,15,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Personnel) Reset() {
	*x = Personnel{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Personnel) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Personnel) ProtoMessage() {}

func (x *Personnel) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Personnel.ProtoReflect.Descriptor instead.
func (*Personnel) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{2}
}

func (x *Personnel) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Personnel) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Personnel) GetVariant() string {
	if x != nil {
		return x.Variant
	}
	return ""
}

func (x *Personnel) GetPosition() string {
	if x != nil {
		return x.Position
	}
	return ""
}

func (x *Personnel) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *Personnel) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Personnel) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Personnel) GetSssNo() string {
	if x != nil {
		return x.SssNo
	}
	return ""
}

func (x *Personnel) GetPhilhealthNo() string {
	if x != nil {
		return x.PhilhealthNo
	}
	return ""
}

func (x *Personnel) GetBirthdate() string {
	if x != nil {
		return x.Birthdate
	}
	return ""
}

func (x *Personnel) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Personnel) GetEmployment() string {
	if x != nil {
		return x.Employment
	}
	return ""
}

func (x *Personnel) GetRecordText() string {
	if x != nil {
		return x.RecordText
	}
	return ""
}

func (x *Personnel) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Personnel) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type LoadEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Day           string                 `protobuf:"bytes,1,opt,name=day,proto3" json:"day,omitempty"`
	TimeStart     string                 `protobuf:"bytes,2,opt,name=time_start,json=timeStart,proto3" json:"time_start,omitempty"`
	TimeEnd       string                 `protobuf:"bytes,3,opt,name=time_end,json=timeEnd,proto3" json:"time_end,omitempty"`
	Subject       string                 `protobuf:"bytes,4,opt,name=subject,proto3" json:"subject,omitempty"`
	Section       string                 `protobuf:"bytes,5,opt,name=section,proto3" json:"section,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoadEntry) Reset() {
	*x = LoadEntry{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoadEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoadEntry) ProtoMessage() {}

func (x *LoadEntry) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoadEntry.ProtoReflect.Descriptor instead.
func (*LoadEntry) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{3}
}

func (x *LoadEntry) GetDay() string {
	if x != nil {
		return x.Day
	}
	return ""
}

func (x *LoadEntry) GetTimeStart() string {
	if x != nil {
		return x.TimeStart
	}
	return ""
}

func (x *LoadEntry) GetTimeEnd() string {
	if x != nil {
		return x.TimeEnd
	}
	return ""
}

func (x *LoadEntry) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *LoadEntry) GetSection() string {
	if x != nil {
		return x.Section
	}
	return ""
}

type GradeEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Units         string                 `protobuf:"bytes,3,opt,name=units,proto3" json:"units,omitempty"`
	FinalGrade    string                 `protobuf:"bytes,4,opt,name=final_grade,json=finalGrade,proto3" json:"final_grade,omitempty"`
	Remarks       string                 `protobuf:"bytes,5,opt,name=remarks,proto3" json:"remarks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GradeEntry) Reset() {
	*x = GradeEntry{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GradeEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GradeEntry) ProtoMessage() {}

func (x *GradeEntry) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GradeEntry.ProtoReflect.Descriptor instead.
func (*GradeEntry) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{4}
}

func (x *GradeEntry) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *GradeEntry) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *GradeEntry) GetUnits() string {
	if x != nil {
		return x.Units
	}
	return ""
}

func (x *GradeEntry) GetFinalGrade() string {
	if x != nil {
		return x.FinalGrade
	}
	return ""
}

func (x *GradeEntry) GetRemarks() string {
	if x != nil {
		return x.Remarks
	}
	return ""
}

type GradeReport struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StudentId     string                 `protobuf:"bytes,2,opt,name=student_id,json=studentId,proto3" json:"student_id,omitempty"`
	Semester      string                 `protobuf:"bytes,3,opt,name=semester,proto3" json:"semester,omitempty"`
	SchoolYear    string                 `protobuf:"bytes,4,opt,name=school_year,json=schoolYear,proto3" json:"school_year,omitempty"`
	Gwa           string                 `protobuf:"bytes,5,opt,name=gwa,proto3" json:"gwa,omitempty"`
	RecordText    string                 `protobuf:"bytes,6,opt,name=record_text,json=recordText,proto3" json:"record_text,omitempty"`
	Entries       []*GradeEntry          `protobuf:"bytes,7,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GradeReport) Reset() {
	*x = GradeReport{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GradeReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GradeReport) ProtoMessage() {}

func (x *GradeReport) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GradeReport.ProtoReflect.Descriptor instead.
func (*GradeReport) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{5}
}

func (x *GradeReport) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GradeReport) GetStudentId() string {
	if x != nil {
		return x.StudentId
	}
	return ""
}

func (x *GradeReport) GetSemester() string {
	if x != nil {
		return x.Semester
	}
	return ""
}

func (x *GradeReport) GetSchoolYear() string {
	if x != nil {
		return x.SchoolYear
	}
	return ""
}

func (x *GradeReport) GetGwa() string {
	if x != nil {
		return x.Gwa
	}
	return ""
}

func (x *GradeReport) GetRecordText() string {
	if x != nil {
		return x.RecordText
	}
	return ""
}

func (x *GradeReport) GetEntries() []*GradeEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type ExtractJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileId        string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Format        string                 `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"`
	SheetName     string                 `protobuf:"bytes,4,opt,name=sheet_name,json=sheetName,proto3" json:"sheet_name,omitempty"`
	RecordKind    string                 `protobuf:"bytes,5,opt,name=record_kind,json=recordKind,proto3" json:"record_kind,omitempty"`
	Status        string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	StartedAt     string                 `protobuf:"bytes,8,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,9,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractJob) Reset() {
	*x = ExtractJob{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractJob) ProtoMessage() {}

func (x *ExtractJob) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractJob.ProtoReflect.Descriptor instead.
func (*ExtractJob) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{6}
}

func (x *ExtractJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractJob) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *ExtractJob) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ExtractJob) GetSheetName() string {
	if x != nil {
		return x.SheetName
	}
	return ""
}

func (x *ExtractJob) GetRecordKind() string {
	if x != nil {
		return x.RecordKind
	}
	return ""
}

func (x *ExtractJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExtractJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ExtractJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ExtractJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type GetStudentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StudentNo     string                 `protobuf:"bytes,2,opt,name=student_no,json=studentNo,proto3" json:"student_no,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStudentRequest) Reset() {
	*x = GetStudentRequest{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStudentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStudentRequest) ProtoMessage() {}

func (x *GetStudentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStudentRequest.ProtoReflect.Descriptor instead.
func (*GetStudentRequest) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{7}
}

func (x *GetStudentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GetStudentRequest) GetStudentNo() string {
	if x != nil {
		return x.StudentNo
	}
	return ""
}

func (x *GetStudentRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type GetStudentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Student       *Student               `protobuf:"bytes,1,opt,name=student,proto3" json:"student,omitempty"`
	Subjects      []*SubjectEntry        `protobuf:"bytes,2,rep,name=subjects,proto3" json:"subjects,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStudentResponse) Reset() {
	*x = GetStudentResponse{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStudentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStudentResponse) ProtoMessage() {}

func (x *GetStudentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStudentResponse.ProtoReflect.Descriptor instead.
func (*GetStudentResponse) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{8}
}

func (x *GetStudentResponse) GetStudent() *Student {
	if x != nil {
		return x.Student
	}
	return nil
}

func (x *GetStudentResponse) GetSubjects() []*SubjectEntry {
	if x != nil {
		return x.Subjects
	}
	return nil
}

type ListStudentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStudentsRequest) Reset() {
	*x = ListStudentsRequest{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStudentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStudentsRequest) ProtoMessage() {}

func (x *ListStudentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStudentsRequest.ProtoReflect.Descriptor instead.
func (*ListStudentsRequest) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{9}
}

type ListStudentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Students      []*Student             `protobuf:"bytes,1,rep,name=students,proto3" json:"students,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStudentsResponse) Reset() {
	*x = ListStudentsResponse{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStudentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStudentsResponse) ProtoMessage() {}

func (x *ListStudentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStudentsResponse.ProtoReflect.Descriptor instead.
func (*ListStudentsResponse) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{10}
}

func (x *ListStudentsResponse) GetStudents() []*Student {
	if x != nil {
		return x.Students
	}
	return nil
}

type SearchStudentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchStudentsRequest) Reset() {
	*x = SearchStudentsRequest{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchStudentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchStudentsRequest) ProtoMessage() {}

func (x *SearchStudentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchStudentsRequest.ProtoReflect.Descriptor instead.
func (*SearchStudentsRequest) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{11}
}

func (x *SearchStudentsRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type SearchStudentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Students      []*Student             `protobuf:"bytes,1,rep,name=students,proto3" json:"students,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchStudentsResponse) Reset() {
	*x = SearchStudentsResponse{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchStudentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchStudentsResponse) ProtoMessage() {}

func (x *SearchStudentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchStudentsResponse.ProtoReflect.Descriptor instead.
func (*SearchStudentsResponse) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{12}
}

func (x *SearchStudentsResponse) GetStudents() []*Student {
	if x != nil {
		return x.Students
	}
	return nil
}

type GetStudentGradesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StudentId     string                 `protobuf:"bytes,1,opt,name=student_id,json=studentId,proto3" json:"student_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStudentGradesRequest) Reset() {
	*x = GetStudentGradesRequest{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStudentGradesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStudentGradesRequest) ProtoMessage() {}

func (x *GetStudentGradesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStudentGradesRequest.ProtoReflect.Descriptor instead.
func (*GetStudentGradesRequest) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{13}
}

func (x *GetStudentGradesRequest) GetStudentId() string {
	if x != nil {
		return x.StudentId
	}
	return ""
}

type GetStudentGradesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reports       []*GradeReport         `protobuf:"bytes,1,rep,name=reports,proto3" json:"reports,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStudentGradesResponse) Reset() {
	*x = GetStudentGradesResponse{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStudentGradesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStudentGradesResponse) ProtoMessage() {}

func (x *GetStudentGradesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStudentGradesResponse.ProtoReflect.Descriptor instead.
func (*GetStudentGradesResponse) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{14}
}

func (x *GetStudentGradesResponse) GetReports() []*GradeReport {
	if x != nil {
		return x.Reports
	}
	return nil
}

type GetPersonnelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPersonnelRequest) Reset() {
	*x = GetPersonnelRequest{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPersonnelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPersonnelRequest) ProtoMessage() {}

func (x *GetPersonnelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPersonnelRequest.ProtoReflect.Descriptor instead.
func (*GetPersonnelRequest) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{15}
}

func (x *GetPersonnelRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GetPersonnelRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type GetPersonnelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Personnel     *Personnel             `protobuf:"bytes,1,opt,name=personnel,proto3" json:"personnel,omitempty"`
	Loads         []*LoadEntry           `protobuf:"bytes,2,rep,name=loads,proto3" json:"loads,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPersonnelResponse) Reset() {
	*x = GetPersonnelResponse{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPersonnelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPersonnelResponse) ProtoMessage() {}

func (x *GetPersonnelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPersonnelResponse.ProtoReflect.Descriptor instead.
func (*GetPersonnelResponse) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{16}
}

func (x *GetPersonnelResponse) GetPersonnel() *Personnel {
	if x != nil {
		return x.Personnel
	}
	return nil
}

func (x *GetPersonnelResponse) GetLoads() []*LoadEntry {
	if x != nil {
		return x.Loads
	}
	return nil
}

type ListPersonnelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Department    string                 `protobuf:"bytes,1,opt,name=department,proto3" json:"department,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPersonnelRequest) Reset() {
	*x = ListPersonnelRequest{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPersonnelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPersonnelRequest) ProtoMessage() {}

func (x *ListPersonnelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPersonnelRequest.ProtoReflect.Descriptor instead.
func (*ListPersonnelRequest) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{17}
}

func (x *ListPersonnelRequest) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

type ListPersonnelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Personnel     []*Personnel           `protobuf:"bytes,1,rep,name=personnel,proto3" json:"personnel,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPersonnelResponse) Reset() {
	*x = ListPersonnelResponse{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPersonnelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPersonnelResponse) ProtoMessage() {}

func (x *ListPersonnelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPersonnelResponse.ProtoReflect.Descriptor instead.
func (*ListPersonnelResponse) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{18}
}

func (x *ListPersonnelResponse) GetPersonnel() []*Personnel {
	if x != nil {
		return x.Personnel
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{19}
}

func (x *ListJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*ExtractJob          `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{20}
}

func (x *ListJobsResponse) GetJobs() []*ExtractJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{21}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{22}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{23}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{24}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ExportStudentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportStudentsRequest) Reset() {
	*x = ExportStudentsRequest{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStudentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStudentsRequest) ProtoMessage() {}

func (x *ExportStudentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStudentsRequest.ProtoReflect.Descriptor instead.
func (*ExportStudentsRequest) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{25}
}

type ExportPersonnelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Department    string                 `protobuf:"bytes,1,opt,name=department,proto3" json:"department,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPersonnelRequest) Reset() {
	*x = ExportPersonnelRequest{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPersonnelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPersonnelRequest) ProtoMessage() {}

func (x *ExportPersonnelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPersonnelRequest.ProtoReflect.Descriptor instead.
func (*ExportPersonnelRequest) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{26}
}

func (x *ExportPersonnelRequest) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

type ExportGradesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StudentId     string                 `protobuf:"bytes,1,opt,name=student_id,json=studentId,proto3" json:"student_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportGradesRequest) Reset() {
	*x = ExportGradesRequest{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportGradesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportGradesRequest) ProtoMessage() {}

func (x *ExportGradesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportGradesRequest.ProtoReflect.Descriptor instead.
func (*ExportGradesRequest) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{27}
}

func (x *ExportGradesRequest) GetStudentId() string {
	if x != nil {
		return x.StudentId
	}
	return ""
}

type ExportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResponse) Reset() {
	*x = ExportResponse{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResponse) ProtoMessage() {}

func (x *ExportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResponse.ProtoReflect.Descriptor instead.
func (*ExportResponse) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{28}
}

func (x *ExportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type AskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Question      string                 `protobuf:"bytes,1,opt,name=question,proto3" json:"question,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AskRequest) Reset() {
	*x = AskRequest{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AskRequest) ProtoMessage() {}

func (x *AskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AskRequest.ProtoReflect.Descriptor instead.
func (*AskRequest) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{29}
}

func (x *AskRequest) GetQuestion() string {
	if x != nil {
		return x.Question
	}
	return ""
}

type AskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Intent        string                 `protobuf:"bytes,1,opt,name=intent,proto3" json:"intent,omitempty"`
	Subject       string                 `protobuf:"bytes,2,opt,name=subject,proto3" json:"subject,omitempty"`
	Text          string                 `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
	Matched       bool                   `protobuf:"varint,4,opt,name=matched,proto3" json:"matched,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AskResponse) Reset() {
	*x = AskResponse{}
	mi := &file_instsys_v1_instsys_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AskResponse) ProtoMessage() {}

func (x *AskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_instsys_v1_instsys_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AskResponse.ProtoReflect.Descriptor instead.
func (*AskResponse) Descriptor() ([]byte, []int) {
	return file_instsys_v1_instsys_proto_rawDescGZIP(), []int{30}
}

func (x *AskResponse) GetIntent() string {
	if x != nil {
		return x.Intent
	}
	return ""
}

func (x *AskResponse) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *AskResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *AskResponse) GetMatched() bool {
	if x != nil {
		return x.Matched
	}
	return false
}

var File_instsys_v1_instsys_proto protoreflect.FileDescriptor

const file_instsys_v1_instsys_proto_rawDesc = "" +
	"\n" +
	"\x18instsys/v1/instsys.proto\x12\n" +
	"instsys.v1\"\xd5\x02\n" +
	"\aStudent\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"student_no\x18\x02 \x01(\tR\tstudentNo\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x18\n" +
	"\aprogram\x18\x04 \x01(\tR\aprogram\x12\x1d\n" +
	"\n" +
	"year_level\x18\x05 \x01(\tR\tyearLevel\x12\x18\n" +
	"\asection\x18\x06 \x01(\tR\asection\x12\x1a\n" +
	"\bsemester\x18\a \x01(\tR\bsemester\x12\x1f\n" +
	"\vschool_year\x18\b \x01(\tR\n" +
	"schoolYear\x12\x18\n" +
	"\aadviser\x18\t \x01(\tR\aadviser\x12\x1f\n" +
	"\vrecord_text\x18\n" +
	" \x01(\tR\n" +
	"recordText\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\"\xae\x01\n" +
	"\fSubjectEntry\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x14\n" +
	"\x05units\x18\x03 \x01(\tR\x05units\x12\x12\n" +
	"\x04room\x18\x04 \x01(\tR\x04room\x12\x10\n" +
	"\x03day\x18\x05 \x01(\tR\x03day\x12\x1d\n" +
	"\n" +
	"time_start\x18\x06 \x01(\tR\ttimeStart\x12\x19\n" +
	"\btime_end\x18\a \x01(\tR\atimeEnd\"\xa4\x03\n" +
	"\tPersonnel\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\avariant\x18\x03 \x01(\tR\avariant\x12\x1a\n" +
	"\bposition\x18\x04 \x01(\tR\bposition\x12\x1e\n" +
	"\n" +
	"department\x18\x05 \x01(\tR\n" +
	"department\x12\x14\n" +
	"\x05email\x18\x06 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\a \x01(\tR\x05phone\x12\x15\n" +
	"\x06sss_no\x18\b \x01(\tR\x05sssNo\x12#\n" +
	"\rphilhealth_no\x18\t \x01(\tR\fphilhealthNo\x12\x1c\n" +
	"\tbirthdate\x18\n" +
	" \x01(\tR\tbirthdate\x12\x18\n" +
	"\aaddress\x18\v \x01(\tR\aaddress\x12\x1e\n" +
	"\n" +
	"employment\x18\f \x01(\tR\n" +
	"employment\x12\x1f\n" +
	"\vrecord_text\x18\r \x01(\tR\n" +
	"recordText\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0e \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0f \x01(\tR\tupdatedAt\"\x8b\x01\n" +
	"\tLoadEntry\x12\x10\n" +
	"\x03day\x18\x01 \x01(\tR\x03day\x12\x1d\n" +
	"\n" +
	"time_start\x18\x02 \x01(\tR\ttimeStart\x12\x19\n" +
	"\btime_end\x18\x03 \x01(\tR\atimeEnd\x12\x18\n" +
	"\asubject\x18\x04 \x01(\tR\asubject\x12\x18\n" +
	"\asection\x18\x05 \x01(\tR\asection\"\x87\x01\n" +
	"\n" +
	"GradeEntry\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x14\n" +
	"\x05units\x18\x03 \x01(\tR\x05units\x12\x1f\n" +
	"\vfinal_grade\x18\x04 \x01(\tR\n" +
	"finalGrade\x12\x18\n" +
	"\aremarks\x18\x05 \x01(\tR\aremarks\"\xde\x01\n" +
	"\vGradeReport\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"student_id\x18\x02 \x01(\tR\tstudentId\x12\x1a\n" +
	"\bsemester\x18\x03 \x01(\tR\bsemester\x12\x1f\n" +
	"\vschool_year\x18\x04 \x01(\tR\n" +
	"schoolYear\x12\x10\n" +
	"\x03gwa\x18\x05 \x01(\tR\x03gwa\x12\x1f\n" +
	"\vrecord_text\x18\x06 \x01(\tR\n" +
	"recordText\x120\n" +
	"\aentries\x18\a \x03(\v2\x16.instsys.v1.GradeEntryR\aentries\"\x8a\x02\n" +
	"\n" +
	"ExtractJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\x12\x1d\n" +
	"\n" +
	"sheet_name\x18\x04 \x01(\tR\tsheetName\x12\x1f\n" +
	"\vrecord_kind\x18\x05 \x01(\tR\n" +
	"recordKind\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"started_at\x18\b \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\t \x01(\tR\n" +
	"finishedAt\"V\n" +
	"\x11GetStudentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"student_no\x18\x02 \x01(\tR\tstudentNo\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\"y\n" +
	"\x12GetStudentResponse\x12-\n" +
	"\astudent\x18\x01 \x01(\v2\x13.instsys.v1.StudentR\astudent\x124\n" +
	"\bsubjects\x18\x02 \x03(\v2\x18.instsys.v1.SubjectEntryR\bsubjects\"\x15\n" +
	"\x13ListStudentsRequest\"G\n" +
	"\x14ListStudentsResponse\x12/\n" +
	"\bstudents\x18\x01 \x03(\v2\x13.instsys.v1.StudentR\bstudents\"-\n" +
	"\x15SearchStudentsRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\"I\n" +
	"\x16SearchStudentsResponse\x12/\n" +
	"\bstudents\x18\x01 \x03(\v2\x13.instsys.v1.StudentR\bstudents\"8\n" +
	"\x17GetStudentGradesRequest\x12\x1d\n" +
	"\n" +
	"student_id\x18\x01 \x01(\tR\tstudentId\"M\n" +
	"\x18GetStudentGradesResponse\x121\n" +
	"\areports\x18\x01 \x03(\v2\x17.instsys.v1.GradeReportR\areports\"9\n" +
	"\x13GetPersonnelRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"x\n" +
	"\x14GetPersonnelResponse\x123\n" +
	"\tpersonnel\x18\x01 \x01(\v2\x15.instsys.v1.PersonnelR\tpersonnel\x12+\n" +
	"\x05loads\x18\x02 \x03(\v2\x15.instsys.v1.LoadEntryR\x05loads\"6\n" +
	"\x14ListPersonnelRequest\x12\x1e\n" +
	"\n" +
	"department\x18\x01 \x01(\tR\n" +
	"department\"L\n" +
	"\x15ListPersonnelResponse\x123\n" +
	"\tpersonnel\x18\x01 \x03(\v2\x15.instsys.v1.PersonnelR\tpersonnel\"'\n" +
	"\x0fListJobsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\">\n" +
	"\x10ListJobsResponse\x12*\n" +
	"\x04jobs\x18\x01 \x03(\v2\x16.instsys.v1.ExtractJobR\x04jobs\"'\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\xea\x01\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"V\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\"\xdd\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x124\n" +
	"\aresults\x18\x06 \x03(\v2\x1a.instsys.v1.IngestResponseR\aresults\"\x17\n" +
	"\x15ExportStudentsRequest\"8\n" +
	"\x16ExportPersonnelRequest\x12\x1e\n" +
	"\n" +
	"department\x18\x01 \x01(\tR\n" +
	"department\"4\n" +
	"\x13ExportGradesRequest\x12\x1d\n" +
	"\n" +
	"student_id\x18\x01 \x01(\tR\tstudentId\"$\n" +
	"\x0eExportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"(\n" +
	"\n" +
	"AskRequest\x12\x1a\n" +
	"\bquestion\x18\x01 \x01(\tR\bquestion\"m\n" +
	"\vAskResponse\x12\x16\n" +
	"\x06intent\x18\x01 \x01(\tR\x06intent\x12\x18\n" +
	"\asubject\x18\x02 \x01(\tR\asubject\x12\x12\n" +
	"\x04text\x18\x03 \x01(\tR\x04text\x12\x18\n" +
	"\amatched\x18\x04 \x01(\bR\amatched2\xd8\x04\n" +
	"\x0eRecordsService\x12K\n" +
	"\n" +
	"GetStudent\x12\x1d.instsys.v1.GetStudentRequest\x1a\x1e.instsys.v1.GetStudentResponse\x12Q\n" +
	"\fListStudents\x12\x1f.instsys.v1.ListStudentsRequest\x1a .instsys.v1.ListStudentsResponse\x12W\n" +
	"\x0eSearchStudents\x12!.instsys.v1.SearchStudentsRequest\x1a\".instsys.v1.SearchStudentsResponse\x12]\n" +
	"\x10GetStudentGrades\x12#.instsys.v1.GetStudentGradesRequest\x1a$.instsys.v1.GetStudentGradesResponse\x12Q\n" +
	"\fGetPersonnel\x12\x1f.instsys.v1.GetPersonnelRequest\x1a .instsys.v1.GetPersonnelResponse\x12T\n" +
	"\rListPersonnel\x12 .instsys.v1.ListPersonnelRequest\x1a!.instsys.v1.ListPersonnelResponse\x12E\n" +
	"\bListJobs\x12\x1b.instsys.v1.ListJobsRequest\x1a\x1c.instsys.v1.ListJobsResponse2\xb7\x01\n" +
	"\x10IngestionService\x12G\n" +
	"\n" +
	"IngestFile\x12\x1d.instsys.v1.IngestFileRequest\x1a\x1a.instsys.v1.IngestResponse\x12Z\n" +
	"\x0fIngestDirectory\x12\".instsys.v1.IngestDirectoryRequest\x1a#.instsys.v1.IngestDirectoryResponse2\x80\x02\n" +
	"\rExportService\x12O\n" +
	"\x0eExportStudents\x12!.instsys.v1.ExportStudentsRequest\x1a\x1a.instsys.v1.ExportResponse\x12Q\n" +
	"\x0fExportPersonnel\x12\".instsys.v1.ExportPersonnelRequest\x1a\x1a.instsys.v1.ExportResponse\x12K\n" +
	"\fExportGrades\x12\x1f.instsys.v1.ExportGradesRequest\x1a\x1a.instsys.v1.ExportResponse2D\n" +
	"\n" +
	"AskService\x126\n" +
	"\x03Ask\x12\x16.instsys.v1.AskRequest\x1a\x17.instsys.v1.AskResponseBPZNgithub.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/proto/instsys/v1;instsysv1b\x06proto3"

var (
	file_instsys_v1_instsys_proto_rawDescOnce sync.Once
	file_instsys_v1_instsys_proto_rawDescData []byte
)

func file_instsys_v1_instsys_proto_rawDescGZIP() []byte {
	file_instsys_v1_instsys_proto_rawDescOnce.Do(func() {
		file_instsys_v1_instsys_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_instsys_v1_instsys_proto_rawDesc), len(file_instsys_v1_instsys_proto_rawDesc)))
	})
	return file_instsys_v1_instsys_proto_rawDescData
}

var file_instsys_v1_instsys_proto_msgTypes = make([]protoimpl.MessageInfo, 31)
var file_instsys_v1_instsys_proto_goTypes = []any{
	(*Student)(nil),                  // 0: instsys.v1.Student
	(*SubjectEntry)(nil),             // 1: instsys.v1.SubjectEntry
	(*Personnel)(nil),                // 2: instsys.v1.Personnel
	(*LoadEntry)(nil),                // 3: instsys.v1.LoadEntry
	(*GradeEntry)(nil),               // 4: instsys.v1.GradeEntry
	(*GradeReport)(nil),              // 5: instsys.v1.GradeReport
	(*ExtractJob)(nil),               // 6: instsys.v1.ExtractJob
	(*GetStudentRequest)(nil),        // 7: instsys.v1.GetStudentRequest
	(*GetStudentResponse)(nil),       // 8: instsys.v1.GetStudentResponse
	(*ListStudentsRequest)(nil),      // 9: instsys.v1.ListStudentsRequest
	(*ListStudentsResponse)(nil),     // 10: instsys.v1.ListStudentsResponse
	(*SearchStudentsRequest)(nil),    // 11: instsys.v1.SearchStudentsRequest
	(*SearchStudentsResponse)(nil),   // 12: instsys.v1.SearchStudentsResponse
	(*GetStudentGradesRequest)(nil),  // 13: instsys.v1.GetStudentGradesRequest
	(*GetStudentGradesResponse)(nil), // 14: instsys.v1.GetStudentGradesResponse
	(*GetPersonnelRequest)(nil),      // 15: instsys.v1.GetPersonnelRequest
	(*GetPersonnelResponse)(nil),     // 16: instsys.v1.GetPersonnelResponse
	(*ListPersonnelRequest)(nil),     // 17: instsys.v1.ListPersonnelRequest
	(*ListPersonnelResponse)(nil),    // 18: instsys.v1.ListPersonnelResponse
	(*ListJobsRequest)(nil),          // 19: instsys.v1.ListJobsRequest
	(*ListJobsResponse)(nil),         // 20: instsys.v1.ListJobsResponse
	(*IngestFileRequest)(nil),        // 21: instsys.v1.IngestFileRequest
	(*IngestResponse)(nil),           // 22: instsys.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),   // 23: instsys.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil),  // 24: instsys.v1.IngestDirectoryResponse
	(*ExportStudentsRequest)(nil),    // 25: instsys.v1.ExportStudentsRequest
	(*ExportPersonnelRequest)(nil),   // 26: instsys.v1.ExportPersonnelRequest
	(*ExportGradesRequest)(nil),      // 27: instsys.v1.ExportGradesRequest
	(*ExportResponse)(nil),           // 28: instsys.v1.ExportResponse
	(*AskRequest)(nil),               // 29: instsys.v1.AskRequest
	(*AskResponse)(nil),              // 30: instsys.v1.AskResponse
}
var file_instsys_v1_instsys_proto_depIdxs = []int32{
	4,  // 0: instsys.v1.GradeReport.entries:type_name -> instsys.v1.GradeEntry
	0,  // 1: instsys.v1.GetStudentResponse.student:type_name -> instsys.v1.Student
	1,  // 2: instsys.v1.GetStudentResponse.subjects:type_name -> instsys.v1.SubjectEntry
	0,  // 3: instsys.v1.ListStudentsResponse.students:type_name -> instsys.v1.Student
	0,  // 4: instsys.v1.SearchStudentsResponse.students:type_name -> instsys.v1.Student
	5,  // 5: instsys.v1.GetStudentGradesResponse.reports:type_name -> instsys.v1.GradeReport
	2,  // 6: instsys.v1.GetPersonnelResponse.personnel:type_name -> instsys.v1.Personnel
	3,  // 7: instsys.v1.GetPersonnelResponse.loads:type_name -> instsys.v1.LoadEntry
	2,  // 8: instsys.v1.ListPersonnelResponse.personnel:type_name -> instsys.v1.Personnel
	6,  // 9: instsys.v1.ListJobsResponse.jobs:type_name -> instsys.v1.ExtractJob
	22, // 10: instsys.v1.IngestDirectoryResponse.results:type_name -> instsys.v1.IngestResponse
	7,  // 11: instsys.v1.RecordsService.GetStudent:input_type -> instsys.v1.GetStudentRequest
	9,  // 12: instsys.v1.RecordsService.ListStudents:input_type -> instsys.v1.ListStudentsRequest
	11, // 13: instsys.v1.RecordsService.SearchStudents:input_type -> instsys.v1.SearchStudentsRequest
	13, // 14: instsys.v1.RecordsService.GetStudentGrades:input_type -> instsys.v1.GetStudentGradesRequest
	15, // 15: instsys.v1.RecordsService.GetPersonnel:input_type -> instsys.v1.GetPersonnelRequest
	17, // 16: instsys.v1.RecordsService.ListPersonnel:input_type -> instsys.v1.ListPersonnelRequest
	19, // 17: instsys.v1.RecordsService.ListJobs:input_type -> instsys.v1.ListJobsRequest
	21, // 18: instsys.v1.IngestionService.IngestFile:input_type -> instsys.v1.IngestFileRequest
	23, // 19: instsys.v1.IngestionService.IngestDirectory:input_type -> instsys.v1.IngestDirectoryRequest
	25, // 20: instsys.v1.ExportService.ExportStudents:input_type -> instsys.v1.ExportStudentsRequest
	26, // 21: instsys.v1.ExportService.ExportPersonnel:input_type -> instsys.v1.ExportPersonnelRequest
	27, // 22: instsys.v1.ExportService.ExportGrades:input_type -> instsys.v1.ExportGradesRequest
	29, // 23: instsys.v1.AskService.Ask:input_type -> instsys.v1.AskRequest
	8,  // 24: instsys.v1.RecordsService.GetStudent:output_type -> instsys.v1.GetStudentResponse
	10, // 25: instsys.v1.RecordsService.ListStudents:output_type -> instsys.v1.ListStudentsResponse
	12, // 26: instsys.v1.RecordsService.SearchStudents:output_type -> instsys.v1.SearchStudentsResponse
	14, // 27: instsys.v1.RecordsService.GetStudentGrades:output_type -> instsys.v1.GetStudentGradesResponse
	16, // 28: instsys.v1.RecordsService.GetPersonnel:output_type -> instsys.v1.GetPersonnelResponse
	18, // 29: instsys.v1.RecordsService.ListPersonnel:output_type -> instsys.v1.ListPersonnelResponse
	20, // 30: instsys.v1.RecordsService.ListJobs:output_type -> instsys.v1.ListJobsResponse
	22, // 31: instsys.v1.IngestionService.IngestFile:output_type -> instsys.v1.IngestResponse
	24, // 32: instsys.v1.IngestionService.IngestDirectory:output_type -> instsys.v1.IngestDirectoryResponse
	28, // 33: instsys.v1.ExportService.ExportStudents:output_type -> instsys.v1.ExportResponse
	28, // 34: instsys.v1.ExportService.ExportPersonnel:output_type -> instsys.v1.ExportResponse
	28, // 35: instsys.v1.ExportService.ExportGrades:output_type -> instsys.v1.ExportResponse
	30, // 36: instsys.v1.AskService.Ask:output_type -> instsys.v1.AskResponse
	24, // [24:37] is the sub-list for method output_type
	11, // [11:24] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_instsys_v1_instsys_proto_init() }
func file_instsys_v1_instsys_proto_init() {
	if File_instsys_v1_instsys_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_instsys_v1_instsys_proto_rawDesc), len(file_instsys_v1_instsys_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   31,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_instsys_v1_instsys_proto_goTypes,
		DependencyIndexes: file_instsys_v1_instsys_proto_depIdxs,
		MessageInfos:      file_instsys_v1_instsys_proto_msgTypes,
	}.Build()
	File_instsys_v1_instsys_proto = out.File
	file_instsys_v1_instsys_proto_goTypes = nil
	file_instsys_v1_instsys_proto_depIdxs = nil
}
